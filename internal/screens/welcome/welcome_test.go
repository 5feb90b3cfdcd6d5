package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/akshat/quizzy/internal/router"
	"github.com/akshat/quizzy/internal/screen"
)

type fakeScreen struct{}

func (fakeScreen) Title() string { return "fake" }
func (fakeScreen) Init() tea.Cmd { return nil }

func (f fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }

func (fakeScreen) View(width, height int) string { return "" }

func TestAnyKeyPushesQuiz(t *testing.T) {
	built := 0
	w := New(func() screen.Screen {
		built++
		return fakeScreen{}
	})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a push command on key press")
	}
	if built != 1 {
		t.Fatalf("quizFactory called %d times, want 1", built)
	}

	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want router.PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(fakeScreen); !ok {
		t.Errorf("pushed screen is %T, want the factory's screen", msg.Screen)
	}
}

func TestNonKeyMessagesIgnored(t *testing.T) {
	w := New(func() screen.Screen {
		t.Fatal("quizFactory must not run without a key press")
		return nil
	})

	if _, cmd := w.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("expected no command for a resize")
	}
}

func TestViewShowsStartHint(t *testing.T) {
	w := New(func() screen.Screen { return fakeScreen{} })
	view := w.View(100, 30)
	if !strings.Contains(view, "press any key") {
		t.Errorf("view missing start hint:\n%s", view)
	}
}

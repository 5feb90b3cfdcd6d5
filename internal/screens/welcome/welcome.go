package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/quizzy/internal/router"
	"github.com/akshat/quizzy/internal/screen"
	"github.com/akshat/quizzy/internal/ui/theme"
)

const bannerArt = ` ██████  ██    ██ ██ ███████ ███████ ██    ██
██    ██ ██    ██ ██    ███     ███   ██  ██
██    ██ ██    ██ ██   ███     ███     ████
██ ▄▄ ██ ██    ██ ██  ███     ███       ██
 ██████   ██████  ██ ███████ ███████    ██
    ▀▀`

// WelcomeScreen greets the player; any key starts a quiz session.
type WelcomeScreen struct {
	quizFactory func() screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that starts sessions from quizFactory.
func New(quizFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{quizFactory: quizFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		quiz := w.quizFactory()
		return w, func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt)
	sections = append(sections, banner)
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Questions that keep up with you.")
	sections = append(sections, tagline)

	sections = append(sections, "")
	hint := theme.Hint.Render("press any key to start a session")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

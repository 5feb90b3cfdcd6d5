package feedback

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// recordingPlayer captures every cue it is asked to play.
type recordingPlayer struct {
	cues []Cue
	err  error
}

func (p *recordingPlayer) Play(c Cue) error {
	p.cues = append(p.cues, c)
	return p.err
}

func TestSetStatusCancelsCountdown(t *testing.T) {
	m := New(NoopPlayer{})

	cmd := m.SetStatusCountdown("Recalibrating", 3*time.Second)
	if cmd == nil {
		t.Fatal("expected a countdown tick command")
	}
	if !strings.Contains(m.StatusLine(), "~3s") {
		t.Errorf("StatusLine = %q, want a ~3s countdown", m.StatusLine())
	}
	firstSeq := m.countdownSeq

	// A new status must cancel the running countdown.
	m.SetStatus("Pick an answer")
	if m.StatusLine() != "Pick an answer" {
		t.Errorf("StatusLine = %q, want plain status", m.StatusLine())
	}

	// A stale tick from the cancelled countdown is dropped.
	m, _ = m.Update(countdownTickMsg{seq: firstSeq})
	if strings.Contains(m.StatusLine(), "~") {
		t.Errorf("stale tick revived the countdown: %q", m.StatusLine())
	}
}

func TestCountdownTicksDown(t *testing.T) {
	m := New(NoopPlayer{})
	_ = m.SetStatusCountdown("Next question coming up", 2*time.Second)

	m, cmd := m.Update(countdownTickMsg{seq: m.countdownSeq})
	if !strings.Contains(m.StatusLine(), "~1s") {
		t.Errorf("StatusLine = %q, want ~1s remaining", m.StatusLine())
	}
	if cmd == nil {
		t.Error("expected a follow-up tick while seconds remain")
	}

	m, cmd = m.Update(countdownTickMsg{seq: m.countdownSeq})
	if strings.Contains(m.StatusLine(), "~") {
		t.Errorf("StatusLine = %q, want countdown hidden at zero", m.StatusLine())
	}
	if cmd != nil {
		t.Error("expected no tick once the countdown reached zero")
	}
}

func TestOverlayLifecycle(t *testing.T) {
	m := New(NoopPlayer{})

	cmd := m.ShowOverlay("Correct!", VariantGood, time.Second)
	if cmd == nil {
		t.Fatal("expected an expiry command")
	}
	text, variant := m.Overlay()
	if text != "Correct!" || variant != VariantGood {
		t.Errorf("Overlay = (%q, %v), want (Correct!, good)", text, variant)
	}

	// A newer overlay invalidates the old expiry.
	staleSeq := m.overlaySeq
	_ = m.ShowOverlay("Too easy for you!", VariantInfo, time.Second)
	m, _ = m.Update(overlayExpireMsg{seq: staleSeq})
	if text, _ := m.Overlay(); text != "Too easy for you!" {
		t.Errorf("stale expiry cleared the live overlay, got %q", text)
	}

	// The matching expiry clears it.
	m, _ = m.Update(overlayExpireMsg{seq: m.overlaySeq})
	if text, _ := m.Overlay(); text != "" {
		t.Errorf("Overlay = %q, want cleared", text)
	}
}

func TestPlayRecordsCue(t *testing.T) {
	p := &recordingPlayer{}
	m := New(p)

	m.Play(CueIncrease)
	m.Play(CueCorrect)

	if len(p.cues) != 2 || p.cues[0] != CueIncrease || p.cues[1] != CueCorrect {
		t.Errorf("cues = %v, want [increase correct]", p.cues)
	}
}

func TestPlaySwallowsErrors(t *testing.T) {
	p := &recordingPlayer{err: errors.New("audio device gone")}
	m := New(p)

	// Must not panic or propagate; audio is best-effort.
	m.Play(CueWrong)

	if len(p.cues) != 1 {
		t.Errorf("cues = %v, want one attempted cue", p.cues)
	}
}

func TestNilPlayerIsMuted(t *testing.T) {
	m := New(nil)
	m.Play(CueCorrect) // must not panic
}

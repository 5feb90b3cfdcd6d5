package feedback

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Variant is the semantic flavor of an overlay message.
type Variant int

const (
	VariantInfo Variant = iota
	VariantGood
	VariantBad
)

// countdownTickMsg drives the cosmetic countdown. The seq field lets a
// newer countdown invalidate ticks from an older one.
type countdownTickMsg struct {
	seq int
}

// overlayExpireMsg clears the overlay that scheduled it.
type overlayExpireMsg struct {
	seq int
}

// Model presents transient cues: a status line with an optional
// cosmetic countdown, a short-lived overlay, and audio cues. It is
// purely observational; nothing here gates real timers or requests.
type Model struct {
	player Player

	status       string
	remaining    int // seconds left on the countdown; 0 means hidden
	countdownSeq int

	overlay        string
	overlayVariant Variant
	overlaySeq     int
}

// New builds a Model playing cues through player. A nil player mutes
// audio entirely.
func New(player Player) Model {
	if player == nil {
		player = NoopPlayer{}
	}
	return Model{player: player}
}

// SetStatus replaces the status line. Any running countdown is
// cancelled so stacked timers cannot fight over the display.
func (m *Model) SetStatus(text string) {
	m.status = text
	m.remaining = 0
	m.countdownSeq++
}

// SetStatusCountdown replaces the status line and starts a countdown of
// roughly estimate seconds next to it. The countdown only re-renders;
// the real timer lives with whoever scheduled the work.
func (m *Model) SetStatusCountdown(text string, estimate time.Duration) tea.Cmd {
	m.status = text
	m.countdownSeq++
	m.remaining = int(estimate.Round(time.Second) / time.Second)
	if m.remaining <= 0 {
		m.remaining = 0
		return nil
	}
	return m.countdownTick()
}

func (m *Model) countdownTick() tea.Cmd {
	seq := m.countdownSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{seq: seq}
	})
}

// ShowOverlay displays a transient message that clears itself after dur.
func (m *Model) ShowOverlay(text string, v Variant, dur time.Duration) tea.Cmd {
	m.overlay = text
	m.overlayVariant = v
	m.overlaySeq++
	seq := m.overlaySeq
	return tea.Tick(dur, func(time.Time) tea.Msg {
		return overlayExpireMsg{seq: seq}
	})
}

// Play emits an audio cue. Failures are swallowed here: audio never
// affects score or flow state.
func (m *Model) Play(c Cue) {
	_ = m.player.Play(c)
}

// Update handles the model's own timer messages. Everything else
// passes through untouched.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		if msg.seq != m.countdownSeq || m.remaining <= 0 {
			return m, nil
		}
		m.remaining--
		if m.remaining <= 0 {
			return m, nil
		}
		return m, m.countdownTick()

	case overlayExpireMsg:
		if msg.seq == m.overlaySeq {
			m.overlay = ""
		}
	}
	return m, nil
}

// StatusLine returns the status text, suffixed with the countdown when
// one is running.
func (m Model) StatusLine() string {
	if m.remaining > 0 {
		return fmt.Sprintf("%s (~%ds)", m.status, m.remaining)
	}
	return m.status
}

// Overlay returns the current overlay text ("" when none) and variant.
func (m Model) Overlay() (string, Variant) {
	return m.overlay, m.overlayVariant
}

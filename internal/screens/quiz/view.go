package quiz

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akshat/quizzy/internal/feedback"
	"github.com/akshat/quizzy/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.terminal {
		return s.renderTerminalFailure(width, height)
	}
	if s.state == nil || s.state.Current == nil {
		return s.renderLoading(width, height)
	}
	return s.renderQuestion(width, height)
}

// renderTerminalFailure shows the halted-flow state after a request
// exhausted its retries.
func (s *QuizScreen) renderTerminalFailure(width, height int) string {
	msg := theme.Incorrect.Render("Connection trouble") + "\n\n" +
		theme.Body.Render(s.feedback.StatusLine())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderLoading shows the spinner while the session or first question
// is on its way.
func (s *QuizScreen) renderLoading(width, height int) string {
	line := s.feedback.StatusLine()
	if s.loading {
		line = s.spin.View() + " " + line
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
}

// renderQuestion shows the active question, options, status line, and
// any transient overlay.
func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.state.Current

	var b strings.Builder

	diffLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Difficulty: " + q.Difficulty)
	b.WriteString(diffLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(width))
	b.WriteString("\n\n")

	if overlay, variant := s.feedback.Overlay(); overlay != "" {
		b.WriteString(renderOverlay(overlay, variant, width))
		b.WriteString("\n")
	}

	status := s.feedback.StatusLine()
	if s.loading {
		status = s.spin.View() + " " + status
	}
	statusLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status)
	b.WriteString(statusLine)

	return b.String()
}

// renderOverlay draws the transient message box colored by variant.
func renderOverlay(text string, variant feedback.Variant, width int) string {
	var border color.Color
	switch variant {
	case feedback.VariantGood:
		border = theme.Success
	case feedback.VariantBad:
		border = theme.Error
	default:
		border = theme.Secondary
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2).
		Render(text)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(box)
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akshat/quizzy/internal/api"
	"github.com/akshat/quizzy/internal/ui/theme"
)

// Choice presents a question's options as an ordered selectable list.
// Each item shows its 1-based index (the keyboard shortcut) and carries
// its backing option id. Selection is presentation only; it never
// triggers a submission.
type Choice struct {
	question string
	options  []api.Option

	selected int // index into options; -1 when nothing is selected
	locked   bool

	resolved      bool
	chosenID      string
	chosenCorrect bool
	correctText   string
}

// NewChoice builds a Choice for a freshly served question. The
// selection always starts unset.
func NewChoice(q api.Question) Choice {
	return Choice{
		question: q.Text,
		options:  q.Options,
		selected: -1,
	}
}

// Select highlights the option at 0-based index i and returns its id.
// No-op while locked or out of range.
func (c *Choice) Select(i int) (string, bool) {
	if c.locked || i < 0 || i >= len(c.options) {
		return "", false
	}
	c.selected = i
	return c.options[i].ID, true
}

// MoveUp moves the selection up, landing on the last option when
// nothing was selected yet. Returns the newly selected id.
func (c *Choice) MoveUp() (string, bool) {
	if c.locked || len(c.options) == 0 {
		return "", false
	}
	if c.selected <= 0 {
		return c.Select(len(c.options) - 1)
	}
	return c.Select(c.selected - 1)
}

// MoveDown moves the selection down, wrapping to the first option.
func (c *Choice) MoveDown() (string, bool) {
	if c.locked || len(c.options) == 0 {
		return "", false
	}
	if c.selected < 0 || c.selected == len(c.options)-1 {
		return c.Select(0)
	}
	return c.Select(c.selected + 1)
}

// SelectedID returns the id of the selected option, if any.
func (c Choice) SelectedID() (string, bool) {
	if c.selected < 0 || c.selected >= len(c.options) {
		return "", false
	}
	return c.options[c.selected].ID, true
}

// Lock freezes the selection while a submission is pending.
func (c *Choice) Lock() {
	c.locked = true
}

// Resolve marks the chosen option correct or incorrect. When incorrect,
// the option whose visible text equals correctText is shown as the
// right one; the service reports the answer by text, not option id.
func (c *Choice) Resolve(chosenID string, correct bool, correctText string) {
	c.locked = true
	c.resolved = true
	c.chosenID = chosenID
	c.chosenCorrect = correct
	c.correctText = correctText
}

// View renders the option list.
func (c Choice) View(width int) string {
	var b strings.Builder

	for i, opt := range c.options {
		prefix := "  "
		if i == c.selected && !c.resolved {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt.Text)

		switch {
		case c.resolved && opt.ID == c.chosenID && c.chosenCorrect:
			b.WriteString(theme.Correct.Render(line))
		case c.resolved && opt.ID == c.chosenID:
			b.WriteString(theme.Incorrect.Render(line))
		case c.resolved && !c.chosenCorrect && opt.Text == c.correctText:
			b.WriteString(theme.Correct.Render(line))
		case c.resolved:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == c.selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if !c.resolved && !c.locked {
		hint := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\nSelect (1-%d) or use arrows, Enter to submit", len(c.options)))
		b.WriteString(hint)
	}

	return b.String()
}

package components

import (
	"strings"
	"testing"

	"github.com/akshat/quizzy/internal/api"
)

func testQuestion() api.Question {
	return api.Question{
		ID:   "q1",
		Text: "What is the capital of France?",
		Options: []api.Option{
			{ID: "o1", Text: "Lyon"},
			{ID: "o2", Text: "Paris"},
			{ID: "o3", Text: "Nice"},
		},
	}
}

func TestChoiceSelectionExclusive(t *testing.T) {
	c := NewChoice(testQuestion())

	if _, ok := c.SelectedID(); ok {
		t.Error("expected no selection on a fresh question")
	}

	id, ok := c.Select(0)
	if !ok || id != "o1" {
		t.Fatalf("Select(0) = (%q, %v), want (o1, true)", id, ok)
	}

	// Selecting B after A leaves only B selected.
	id, ok = c.Select(2)
	if !ok || id != "o3" {
		t.Fatalf("Select(2) = (%q, %v), want (o3, true)", id, ok)
	}
	if got, _ := c.SelectedID(); got != "o3" {
		t.Errorf("SelectedID = %q, want o3", got)
	}

	view := c.View(80)
	if strings.Count(view, "▸") != 1 {
		t.Errorf("expected exactly one selection marker, view:\n%s", view)
	}
}

func TestChoiceSelectOutOfRange(t *testing.T) {
	c := NewChoice(testQuestion())
	if _, ok := c.Select(5); ok {
		t.Error("Select accepted an out-of-range index")
	}
	if _, ok := c.Select(-1); ok {
		t.Error("Select accepted a negative index")
	}
}

func TestChoiceArrowsWrap(t *testing.T) {
	c := NewChoice(testQuestion())

	// MoveDown with no selection lands on the first option.
	if id, _ := c.MoveDown(); id != "o1" {
		t.Errorf("MoveDown from unset = %q, want o1", id)
	}
	if id, _ := c.MoveDown(); id != "o2" {
		t.Errorf("MoveDown = %q, want o2", id)
	}
	// Up from the top wraps to the bottom.
	c2 := NewChoice(testQuestion())
	if id, _ := c2.MoveUp(); id != "o3" {
		t.Errorf("MoveUp from unset = %q, want o3", id)
	}
}

func TestChoiceLockFreezesSelection(t *testing.T) {
	c := NewChoice(testQuestion())
	c.Select(1)
	c.Lock()

	if _, ok := c.Select(0); ok {
		t.Error("Select accepted while locked")
	}
	if _, ok := c.MoveDown(); ok {
		t.Error("MoveDown accepted while locked")
	}
	if got, _ := c.SelectedID(); got != "o2" {
		t.Errorf("SelectedID = %q, want o2 unchanged", got)
	}
}

func TestChoiceResolveIncorrectHighlightsByText(t *testing.T) {
	c := NewChoice(testQuestion())
	c.Select(0) // "Lyon", wrong

	// The service names the correct answer by text, not id.
	c.Resolve("o1", false, "Paris")

	view := c.View(80)
	if !strings.Contains(view, "Lyon") || !strings.Contains(view, "Paris") {
		t.Fatalf("view missing options:\n%s", view)
	}
	// After resolution the selection marker is gone and no new
	// selection is possible.
	if strings.Contains(view, "▸") {
		t.Error("selection marker still shown after resolution")
	}
	if _, ok := c.Select(2); ok {
		t.Error("Select accepted after resolution")
	}
}

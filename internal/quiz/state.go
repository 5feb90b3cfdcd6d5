package quiz

import "github.com/akshat/quizzy/internal/api"

// Score tracks in-session results. Total increments exactly once per
// completed submission and Correct never exceeds it.
type Score struct {
	Correct int
	Total   int
}

// State is the runtime state of one quiz session: session id, score,
// the single current question, the selection, and the input mode. All
// mutation happens on the one update loop that owns it, so there is no
// locking here.
type State struct {
	SessionID string
	Score     Score
	Mode      Mode

	// Current is the one live question, replaced wholesale on every
	// successful fetch. Nil until the first question arrives.
	Current *api.Question

	// SelectedOptionID, when set, always references an option of
	// Current.
	SelectedOptionID string
}

// NewState starts a session in ModeLocked; input opens up when the
// first question lands.
func NewState(sessionID string) *State {
	return &State{SessionID: sessionID, Mode: ModeLocked}
}

// SetQuestion replaces the current question, clears the selection, and
// re-enters submit mode.
func (s *State) SetQuestion(q api.Question) {
	s.Current = &q
	s.SelectedOptionID = ""
	s.Mode = ModeSubmit
}

// Select records a selection. Rejected (not queued) outside ModeSubmit
// or when the id does not belong to the current question.
func (s *State) Select(optionID string) bool {
	if s.Mode != ModeSubmit || s.Current == nil || !s.Current.HasOption(optionID) {
		return false
	}
	s.SelectedOptionID = optionID
	return true
}

// BeginSubmit validates the pending selection and locks input so no
// second submission can go out. Returns the selected option id, or
// ok=false when nothing may be submitted.
func (s *State) BeginSubmit() (optionID string, ok bool) {
	if s.Mode != ModeSubmit || s.Current == nil || s.SelectedOptionID == "" {
		return "", false
	}
	s.Mode = ModeLocked
	return s.SelectedOptionID, true
}

// RecordResult applies a graded submission to the score.
func (s *State) RecordResult(correct bool) {
	s.Score.Total++
	if correct {
		s.Score.Correct++
	}
}

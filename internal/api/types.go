package api

// Option is one selectable answer of a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a served quiz question. It is replaced wholesale on every
// successful fetch; the client never retains a prior question.
type Question struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []Option `json:"options"`
	Difficulty string   `json:"difficulty"`
}

// HasOption reports whether id names one of the question's options.
func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Signal is the adaptive-difficulty hint attached to a next-question
// response. The client only presents it; it never alters requests.
type Signal int

const (
	SignalNone Signal = iota
	SignalIncrease
	SignalDecrease
)

// Wire values for Signal, as sent by the service.
const (
	wireSignalIncrease = "too_easy_increasing_difficulty"
	wireSignalDecrease = "too_hard_decreasing_difficulty"
)

// ParseSignal maps a wire value to a Signal. Absent, "none", and
// unrecognized values all mean no signal.
func ParseSignal(s string) Signal {
	switch s {
	case wireSignalIncrease:
		return SignalIncrease
	case wireSignalDecrease:
		return SignalDecrease
	default:
		return SignalNone
	}
}

func (s Signal) String() string {
	switch s {
	case SignalIncrease:
		return "increase"
	case SignalDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// NextQuestion is a decoded next-question response.
type NextQuestion struct {
	Question Question
	Signal   Signal
}

// Submission identifies one answer to one question of one session.
type Submission struct {
	SessionID        string `json:"session_id"`
	QuestionID       string `json:"question_id"`
	SelectedOptionID string `json:"selected_option_id"`
}

// Result is the grading of a submission. It is consumed immediately:
// score update, feedback, then discarded.
type Result struct {
	Correct           bool   `json:"correct"`
	CorrectAnswerText string `json:"correct_answer_text"`
	WindowCompleted   bool   `json:"window_completed"`
	Difficulty        string `json:"difficulty"`
}

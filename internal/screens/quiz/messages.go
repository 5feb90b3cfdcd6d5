package quiz

import (
	"github.com/akshat/quizzy/internal/api"
)

// fetchOp names the logical request a fetch attempt belongs to.
type fetchOp int

const (
	opStart fetchOp = iota
	opNext
	opSubmit
)

// label is the operation name used in status lines.
func (op fetchOp) label() string {
	switch op {
	case opStart:
		return "Starting session"
	case opNext:
		return "Fetching question"
	default:
		return "Submitting answer"
	}
}

// Every async message carries the screen token and the flow sequence
// that scheduled it. Messages from a dead screen or a superseded flow
// are dropped in Update, so an abandoned session can never fire timers
// into a live one.

// sessionStartedMsg is sent when the service issued a session id.
type sessionStartedMsg struct {
	token string
	seq   int
	id    string
}

// questionMsg is sent when the next question arrived.
type questionMsg struct {
	token   string
	seq     int
	payload api.NextQuestion
}

// resultMsg is sent when a submission was graded.
type resultMsg struct {
	token  string
	seq    int
	result api.Result
}

// attemptFailedMsg is sent when one fetch attempt failed.
type attemptFailedMsg struct {
	token   string
	seq     int
	op      fetchOp
	attempt int // 1-based attempt that just failed
	err     error
}

// retryMsg fires when the retry wait elapsed and the next attempt may go out.
type retryMsg struct {
	token   string
	seq     int
	op      fetchOp
	attempt int // 1-based attempt to issue
}

// advanceMsg fires when the post-submit delay elapsed and the next
// question should be fetched.
type advanceMsg struct {
	token string
	seq   int
}

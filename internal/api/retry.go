package api

import (
	"fmt"
	"time"
)

// MaxAttempts is the total attempt budget for one logical request.
const MaxAttempts = 3

// Policy is the fixed retry schedule for one logical request: a short
// wait after the first failure, a long wait after the second, terminal
// after the third. This is a fixed budget, not exponential backoff.
type Policy struct {
	ShortWait time.Duration
	LongWait  time.Duration
}

// Wait returns the delay before the next attempt given the 1-based
// attempt that just failed. ok is false once the budget is exhausted.
func (p Policy) Wait(failedAttempt int) (wait time.Duration, ok bool) {
	switch failedAttempt {
	case 1:
		return p.ShortWait, true
	case 2:
		return p.LongWait, true
	default:
		return 0, false
	}
}

// Status returns the human-readable line shown while the given failed
// attempt is being retried, or the terminal message once exhausted.
func (p Policy) Status(op string, failedAttempt int) string {
	switch failedAttempt {
	case 1:
		return op + " failed, retrying"
	case 2:
		return op + " failed again, one more try"
	default:
		return fmt.Sprintf("%s failed after %d attempts", op, MaxAttempts)
	}
}

package quiz

// Mode gates whether answer input is currently accepted. The machine
// cycles for the life of the session: a new question enters ModeSubmit,
// a valid submission enters ModeLocked, and the scheduled auto-advance
// re-enters ModeSubmit with the next question.
type Mode int

const (
	// ModeLocked rejects selection and submission input. This is the
	// state between questions, while a submission is in flight, and
	// while auto-advance is pending.
	ModeLocked Mode = iota
	// ModeSubmit accepts selection and submission input.
	ModeSubmit
)

func (m Mode) String() string {
	switch m {
	case ModeSubmit:
		return "submit"
	default:
		return "locked"
	}
}

package feedback

import (
	"fmt"
	"io"
	"os"
)

// Cue identifies an audio event.
type Cue int

const (
	CueCorrect Cue = iota
	CueWrong
	CueIncrease
	CueDecrease
)

// Player emits audio cues. Implementations report errors but callers
// treat every failure as non-fatal.
type Player interface {
	Play(Cue) error
}

// NoopPlayer discards all cues.
type NoopPlayer struct{}

func (NoopPlayer) Play(Cue) error { return nil }

// BellPlayer taps the terminal bell in a short pattern per cue. What a
// bell sounds like is the terminal's business.
type BellPlayer struct {
	w io.Writer
}

// NewPlayer probes the environment once: a bell player when stdout
// looks like an interactive terminal, a silent no-op otherwise.
func NewPlayer() Player {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return NoopPlayer{}
	}
	fi, err := os.Stdout.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return NoopPlayer{}
	}
	return &BellPlayer{w: os.Stdout}
}

func (b *BellPlayer) Play(c Cue) error {
	var bells int
	switch c {
	case CueCorrect:
		bells = 1
	case CueWrong:
		bells = 2
	case CueIncrease:
		bells = 3
	case CueDecrease:
		bells = 4
	default:
		return fmt.Errorf("unknown cue %d", c)
	}

	buf := make([]byte, bells)
	for i := range buf {
		buf[i] = '\a'
	}
	_, err := b.w.Write(buf)
	return err
}

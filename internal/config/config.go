package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every externally tunable knob. The four delay values are
// deliberately configuration, not control flow: tuning them must never
// require touching the session logic.
type Config struct {
	// BaseURL is where the quiz service lives.
	BaseURL string `env:"QUIZZY_BASE_URL" envDefault:"http://localhost:8000"`

	// RetryShort is the wait after the first failed attempt of a request.
	RetryShort time.Duration `env:"QUIZZY_RETRY_SHORT" envDefault:"2s"`
	// RetryLong is the wait after the second failed attempt.
	RetryLong time.Duration `env:"QUIZZY_RETRY_LONG" envDefault:"5s"`

	// AdvanceShort is the pause between a graded answer and the next
	// question.
	AdvanceShort time.Duration `env:"QUIZZY_ADVANCE_SHORT" envDefault:"1500ms"`
	// AdvanceLong replaces AdvanceShort when the service just closed an
	// evaluation window and is recomputing difficulty.
	AdvanceLong time.Duration `env:"QUIZZY_ADVANCE_LONG" envDefault:"4s"`
}

// Load reads configuration from the environment, after loading a .env
// file when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akshat/quizzy/internal/api"
	"github.com/akshat/quizzy/internal/app"
	"github.com/akshat/quizzy/internal/config"
)

// runApp loads configuration, builds the service client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}

	return app.Run(app.Options{
		Client: api.NewClient(cfg.BaseURL),
		Config: cfg,
	})
}

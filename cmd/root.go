package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizzy",
	Short: "Adaptive trivia quiz in your terminal",
	Long:  "Quizzy — a terminal client for an adaptive quiz service. The service tunes question difficulty to how you answer; Quizzy keeps the session flowing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Quiz service base URL (overrides QUIZZY_BASE_URL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mockServerCmd)
}

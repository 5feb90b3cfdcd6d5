package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/akshat/quizzy/internal/mockquiz"
)

var mockServerCmd = &cobra.Command{
	Use:   "mockserver",
	Short: "Run a local practice quiz service",
	Long:  "Serves the quiz wire contract from a canned question bank, with the same window-based difficulty adjustment the real service performs. Useful for trying Quizzy without a backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		srv := mockquiz.New()
		log.Printf("practice quiz service listening on %s", addr)
		return http.ListenAndServe(addr, srv.Handler())
	},
}

func init() {
	mockServerCmd.Flags().String("addr", ":8000", "Listen address")
}

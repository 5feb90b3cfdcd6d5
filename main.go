package main

import (
	"os"

	"github.com/akshat/quizzy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

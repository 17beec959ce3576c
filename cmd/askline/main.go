package main

import (
	"os"

	"github.com/fernvale/askline/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.DemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

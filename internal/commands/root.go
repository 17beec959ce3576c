package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd creates the askline root command.
func RootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "askline",
		Short: "Interactive prompt-loop playground",
		Long: `askline exercises the prompt loop: indexed choose menus, free-text
questions, auto-answers, and replay of the last prompt.

Examples:
  askline ask "What's your name?"
  askline demo --divider --inline`,
		SilenceUsage: true,
	}
}

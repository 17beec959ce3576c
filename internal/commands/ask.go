package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernvale/askline/loop"
)

// AskCmd creates the ask command: one question, one answer.
func AskCmd() *cobra.Command {
	var (
		answer   string
		sameLine bool
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single free-text question",
		Long: `Prints the question, reads one line of input, and echoes the answer.

With --answer the read is skipped and the supplied value is used instead,
which is how scripted flows bypass interactive input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loop.New(nil)

			var value any
			if answer != "" {
				value = answer
			}

			got, err := l.Question(args[0], !sameLine, value)
			if err != nil {
				if errors.Is(err, loop.ErrInputClosed) {
					return nil
				}
				return err
			}

			fmt.Printf("You answered: %s\n", got)
			return nil
		},
	}

	cmd.Flags().StringVar(&answer, "answer", "", "auto-answer instead of reading input")
	cmd.Flags().BoolVar(&sameLine, "same-line", false, "keep the cursor on the question line")

	return cmd
}

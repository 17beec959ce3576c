package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fernvale/askline/loop"
)

// DemoCmd creates the demo command: a menu loop that runs until the
// operator picks the quit option.
func DemoCmd() *cobra.Command {
	var (
		navigate      bool
		inline        bool
		divider       bool
		dividerChar   string
		dividerLength int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a sample prompt loop",
		Long: `Runs a menu loop demonstrating choose prompts, questions, replay, and
loop termination. Picking the last option closes the loop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loop.New(&loop.Config{
				DividerLength: dividerLength,
				DividerChar:   dividerChar,
				Navigate:      navigate && term.IsTerminal(int(os.Stdin.Fd())),
			})

			prefs := &loop.Preferences{
				Inline:          inline,
				Divider:         divider,
				DividerPadding:  divider,
				LastOptionClose: true,
			}

			options := []string{"Greet me", "Repeat this menu", "Quit"}

			for !l.Done() {
				selection, err := l.Choose(options, prefs)
				if err != nil {
					if errors.Is(err, loop.ErrInputClosed) {
						return nil
					}
					return err
				}

				switch chosenIndex(selection) {
				case 0:
					name, err := l.Ask("What's your name?")
					if err != nil {
						if errors.Is(err, loop.ErrInputClosed) {
							return nil
						}
						return err
					}
					fmt.Printf("Hello, %s!\n", name)

				case 1:
					// Replays the choose prompt that was just recorded.
					result, err := l.Repeat(nil)
					if err != nil {
						if errors.Is(err, loop.ErrInputClosed) {
							return nil
						}
						return err
					}
					if idx := chosenIndex(result.Selection); idx >= 0 {
						fmt.Printf("Replay picked: %s\n", options[idx])
					}

				case -1:
					fmt.Println("Pick a number between 0 and 2.")
				}
			}

			fmt.Println("Bye.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&navigate, "navigate", false, "arrow-key menus (terminal only)")
	cmd.Flags().BoolVar(&inline, "inline", false, "render options on one line")
	cmd.Flags().BoolVar(&divider, "divider", false, "frame menus with divider lines")
	cmd.Flags().StringVar(&dividerChar, "divider-char", "", "divider character")
	cmd.Flags().IntVar(&dividerLength, "divider-length", 0, "divider length")

	return cmd
}

// chosenIndex returns the true position of a selection, or -1.
func chosenIndex(selection []bool) int {
	for i, picked := range selection {
		if picked {
			return i
		}
	}
	return -1
}

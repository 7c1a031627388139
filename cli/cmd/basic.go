package cmd

import (
	"reversewords/app/reverse"

	"github.com/spf13/cobra"
)

func newBasicCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "basic [text...]",
		Short: "Reverse every word completely",
		Long: `Reverses all characters of every word. Runs of spaces collapse to one.

Examples:
  reversewords basic hello world
  echo "hello world" | reversewords basic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.reverseInput(cmd, args, func(s string) string {
				return reverse.ReverseWords(&s)
			})
		},
	}
}

package cmd

import (
	"fmt"

	"reversewords/app/reverse"
	"reversewords/cli/util"

	"github.com/spf13/cobra"
)

func newDemoCmd(app *application) *cobra.Command {
	var (
		count int
		words int
	)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Reverse a few random sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || words < 0 {
				return fmt.Errorf("count and words cannot be negative")
			}
			out := cmd.OutOrStdout()
			ignore := reverse.DefaultIgnoreSet()
			for i := 0; i < count; i++ {
				sentence := util.RandomSentence(words)
				app.log.Trace(fmt.Sprintf("Generated sentence %d: %s", i, sentence))
				fmt.Fprintf(out, "%s\n\tbasic:     %s\n\tselective: %s\n",
					sentence,
					reverse.ReverseWords(&sentence),
					reverse.ReverseWordsWith(sentence, ignore))
			}
			return nil
		},
	}

	demoCmd.Flags().IntVarP(&count, "count", "n", 3, "number of sentences")
	demoCmd.Flags().IntVarP(&words, "words", "w", 6, "words per sentence")
	return demoCmd
}

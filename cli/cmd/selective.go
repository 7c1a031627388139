package cmd

import (
	"fmt"

	"reversewords/app/form"
	"reversewords/app/reverse"

	"github.com/spf13/cobra"
)

func newSelectiveCmd(app *application) *cobra.Command {
	var (
		custom     string
		useDefault bool
	)

	selectiveCmd := &cobra.Command{
		Use:   "selective [text...]",
		Short: "Reverse words while some symbols stay in place",
		Long: `Reverses every word but keeps ignored symbols at their positions.

The default set is ` + reverse.DefaultIgnoreSymbols + `
Without flags the mode comes from reverse.mode and reverse.ignore in the config.

Examples:
  reversewords selective "hi 123 there"
  reversewords selective --custom - ab-cd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := app.cfg.Mode == form.ModeDefault
			symbols := app.cfg.Ignore
			if cmd.Flags().Changed("custom") {
				def = false
				symbols = custom
			}
			if useDefault {
				def = true
			}

			ignore := reverse.EffectiveIgnoreSet(def, &symbols)
			app.log.Debug(fmt.Sprintf("Ignoring %d symbols: %q", ignore.Len(), ignore.String()))
			return app.reverseInput(cmd, args, func(s string) string {
				return reverse.ReverseWordsWith(s, ignore)
			})
		},
	}

	selectiveCmd.Flags().StringVarP(&custom, "custom", "c", "", "symbols to keep in place (custom mode)")
	selectiveCmd.Flags().BoolVarP(&useDefault, "default", "d", false, "keep the default symbols in place")
	selectiveCmd.MarkFlagsMutuallyExclusive("custom", "default")
	return selectiveCmd
}

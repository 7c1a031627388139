package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"reversewords/app/form"

	"github.com/spf13/cobra"
)

func newFormCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Drive the reversal form with events from stdin",
		Long: `Reads one event per line and prints the form after each one as
state, button title and result separated by tabs.

Events:
  text <text>          replace the text to reverse
  ignore <symbols>     replace the custom symbols
  mode default|custom  switch the ignore mode
  tap                  press the button`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New()
			log := app.log.With("session", f.ID.String())
			log.Info("Form session started")

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := applyEvent(f, scanner.Text()); err != nil {
					log.Error(err.Error())
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", err)
					continue
				}
				log.Debug(fmt.Sprintf("Form is now %s", f.State))
				fmt.Fprintf(out, "%s\t%s\t%s\n", f.State, f.ButtonTitle(), f.Result)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading events; %w", err)
			}
			log.Info("Form session finished")
			return nil
		},
	}
}

func applyEvent(f *form.Form, line string) error {
	event, value, _ := strings.Cut(line, " ")
	switch event {
	case "text":
		f.SetText(value)
	case "ignore":
		f.SetIgnoreSymbols(value)
	case "mode":
		mode, err := form.ParseMode(value)
		if err != nil {
			return err
		}
		f.SetMode(mode)
	case "tap":
		f.Tap()
	default:
		return fmt.Errorf("unknown event %q", event)
	}
	return nil
}

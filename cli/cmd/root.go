package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"reversewords/cli/batch"
	"reversewords/cli/config"
	"reversewords/cli/logging"

	"github.com/spf13/cobra"
)

type application struct {
	cfg config.Config
	log logging.Logger

	cfgFile  string
	logLevel string
	workers  int
}

func NewRootCmd() *cobra.Command {
	app := &application{}

	rootCmd := &cobra.Command{
		Use:   "reversewords",
		Short: "Reverse the characters of every word",
		Long: `reversewords reverses the characters inside each space separated word.

Text comes from the arguments, or line by line from stdin when there are none.
The selective mode keeps digits and punctuation (or your own symbols) in place.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "log level (trace, debug, info, error)")
	rootCmd.PersistentFlags().IntVar(&app.workers, "workers", 0, "workers reversing stdin lines")

	rootCmd.AddCommand(newBasicCmd(app))
	rootCmd.AddCommand(newSelectiveCmd(app))
	rootCmd.AddCommand(newFormCmd(app))
	rootCmd.AddCommand(newDemoCmd(app))
	return rootCmd
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *application) init(cmd *cobra.Command) error {
	v := config.New()
	if err := config.ReadFile(v, a.cfgFile); err != nil {
		return err
	}
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("log-level") {
		v.Set("log.level", a.logLevel)
	}
	if flags.Changed("workers") {
		v.Set("workers", a.workers)
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return fmt.Errorf("invalid configuration; %w", err)
	}
	log, err := logging.NewZerologAdapter(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug(fmt.Sprintf("Configuration loaded: mode %s, workers %d", cfg.Mode, cfg.Workers))
	return nil
}

// reverseInput reverses the joined arguments, or every stdin line when
// there are no arguments.
func (a *application) reverseInput(cmd *cobra.Command, args []string, fn func(string) string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, fn(strings.Join(args, " ")))
		return err
	}

	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		return err
	}
	a.log.Debug(fmt.Sprintf("Read %d lines from stdin", len(lines)))

	reversed, err := batch.NewPool(a.log, a.cfg.Workers).Reverse(cmd.Context(), lines, fn)
	if err != nil {
		return fmt.Errorf("error reversing stdin; %w", err)
	}
	for _, line := range reversed {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input; %w", err)
	}
	return lines, nil
}

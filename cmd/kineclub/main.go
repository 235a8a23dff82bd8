// Package main provides the CLI entry point for kineclub.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/antoine-piarou/kineclub/internal/config"
	"github.com/antoine-piarou/kineclub/internal/logx"
	"github.com/antoine-piarou/kineclub/pkg/kineclub"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "kineclub",
		Short: "Extract player and team assessments from club spreadsheets",
		Long: `kineclub reads physical assessment sheets (xlsx or csv) where each
player occupies a column block, and outputs the players' and the team's
metrics and category scores as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newExtractCmd(a), newSummaryCmd(a), newColumnsCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg
	a.log = logx.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	a.log.Debug().Str("format", cfg.Format).Int("workers", cfg.Workers).Msg("config loaded")
	return nil
}

// options builds extraction options. An empty format uses the configured
// one.
func (a *app) options(format string) (kineclub.Options, error) {
	if format == "" {
		format = a.cfg.Format
	}
	f, err := kineclub.ParseFormat(format)
	if err != nil {
		return kineclub.Options{}, err
	}
	opts := kineclub.DefaultOptions()
	opts.Format = f
	opts.Comma = a.cfg.CSV.Comma()
	opts.Logger = &a.log
	return opts, nil
}

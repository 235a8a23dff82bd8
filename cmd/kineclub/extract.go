package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/antoine-piarou/kineclub/pkg/kineclub"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		outputPath string
		outDir     string
		format     string
		pretty     bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Extract player and team records as JSON",
		Long: `Extract reads each input sheet and writes its report as JSON.

A single input is written to stdout, or to --output. Several inputs are
processed concurrently and each report is written to <out-dir>/<name>.json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pretty") {
				pretty = a.cfg.Pretty
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if workers < 1 {
				return fmt.Errorf("invalid workers: %d (must be at least 1)", workers)
			}

			opts, err := a.options(format)
			if err != nil {
				return err
			}

			if len(args) == 1 && outDir == "" {
				return extractOne(cmd, args[0], outputPath, opts, pretty)
			}
			if outputPath != "" {
				return errors.New("--output takes a single input; use --out-dir for several")
			}
			if outDir == "" {
				return errors.New("--out-dir is required with several inputs")
			}
			return a.extractMany(cmd, args, outDir, workers, opts, pretty)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for per-input output files")
	cmd.Flags().StringVar(&format, "format", "", "Input format: auto, xlsx, csv (default: from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVar(&workers, "workers", 0, "Inputs processed concurrently (default: from config)")
	return cmd
}

func extractOne(cmd *cobra.Command, inputPath, outputPath string, opts kineclub.Options, pretty bool) error {
	report, err := kineclub.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, append(jsonData, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return output.WriteJSON(cmd.OutOrStdout(), jsonData)
}

// extractMany stops scheduling new inputs after the first failure and
// returns that failure.
func (a *app) extractMany(cmd *cobra.Command, inputs []string, outDir string, workers int, opts kineclub.Options, pretty bool) error {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for _, inputPath := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := kineclub.Extract(inputPath, opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			jsonData, err := output.ToJSON(report, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed for %s: %w", inputPath, err)
			}
			written, err := output.WriteFile(outDir, inputPath, jsonData)
			if err != nil {
				return fmt.Errorf("failed to write output for %s: %w", inputPath, err)
			}
			a.log.Info().Str("input", inputPath).Str("output", written).Msg("report written")
			return nil
		})
	}
	return g.Wait()
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/antoine-piarou/kineclub/pkg/kineclub"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/extractor"
	"github.com/spf13/cobra"
)

func newColumnsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "Show how each header column was classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(format)
			if err != nil {
				return err
			}
			res, err := kineclub.Run(args[0], opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sheet %s, range %s (%d rows x %d cols), %d cells\n\n",
				res.Sheet.Name, res.Sheet.Ref, res.Sheet.Range.Rows(), res.Sheet.Range.Cols(), res.Sheet.DataCells)
			return printDecisions(cmd.OutOrStdout(), res.Decisions)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: auto, xlsx, csv (default: from config)")
	return cmd
}

func printDecisions(w io.Writer, decisions []extractor.ColumnDecision) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COL\tHEADER\tROLE\tSCORE\tMETRIC\tREASON")
	for _, d := range decisions {
		header := d.Header
		if header == "" {
			header = "-"
		}
		score, metric := "-", "-"
		if d.Accepted() {
			score = strconv.Itoa(d.ScoreColumn)
			metric = strconv.Itoa(d.MetricColumn)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", d.HeaderIndex, header, d.Role, score, metric, d.Reason)
	}
	return tw.Flush()
}

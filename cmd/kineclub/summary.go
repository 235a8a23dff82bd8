package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/antoine-piarou/kineclub/pkg/kineclub"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/output"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/summary"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		format string
		round  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Print per-category squad statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(format)
			if err != nil {
				return err
			}
			report, err := kineclub.Extract(args[0], opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			rows, err := summary.Summarize(report)
			if err != nil {
				return fmt.Errorf("summary failed: %w", err)
			}

			if asJSON {
				jsonData, err := output.SummaryToJSON(rows, a.cfg.Pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return output.WriteJSON(cmd.OutOrStdout(), jsonData)
			}
			return printSummary(cmd.OutOrStdout(), report, rows, round)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: auto, xlsx, csv (default: from config)")
	cmd.Flags().BoolVar(&round, "round", false, "Round team metric values to two decimals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the category summaries as JSON")
	return cmd
}

func printSummary(w io.Writer, report *models.Report, rows []summary.CategorySummary, round bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTEAM\tLEVEL\tPLAYERS\tMEAN\tMEDIAN\tMIN\tMAX\tSTDDEV")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Category, r.Team, summary.Level(r.Team), r.Players, r.Mean, r.Median, r.Min, r.Max, r.StdDev)
	}

	if len(report.Players) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "PLAYER\tNAME\tMEAN\tLEVEL")
		for _, p := range report.Players {
			mean := summary.PlayerMean(p)
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", p.ID, p.Name, mean, summary.Level(mean))
		}
	}

	if len(report.Team.Metrics) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TEAM METRIC\tVALUE")
		for _, m := range report.Team.Metrics {
			v := m.Value
			if round {
				v = summary.RoundMetric(v)
			}
			fmt.Fprintf(tw, "%s\t%s\n", m.Name, v.Display())
		}
	}
	return tw.Flush()
}

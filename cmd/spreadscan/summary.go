package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spreadscan/internal/format"
	"spreadscan/internal/models"
	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

func summaryCmd(open opener) *cobra.Command {
	var pool int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print summary statistics and the spread type mix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(open, func(s *store) error {
				limit := pool
				if limit <= 0 {
					limit = s.cfg.AnalyticsPoolLimit
				}
				records, err := s.spreads.List(services.SortKey{Field: services.SortByCreatedAt, Descending: true}, limit)
				if err != nil {
					return err
				}

				stats := scanner.Summarize(records)
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Spreads\t%d\n", stats.Count)
				fmt.Fprintf(w, "Avg expected value\t%s\n", format.Currency(stats.AverageExpectedValue))
				fmt.Fprintf(w, "Profitable\t%d (%s)\n", stats.ProfitableCount, format.Percent(stats.ProfitablePercentage, 1))
				fmt.Fprintf(w, "Avg win probability\t%s\n", format.Percent(stats.AverageProbability, 1))
				fmt.Fprintf(w, "Top win probability\t%s\n", format.Percent(stats.MaxProbability, 1))
				fmt.Fprintln(w)

				counts := scanner.TypeDistribution(records)
				fmt.Fprintln(w, "TYPE\tCOUNT")
				for _, t := range models.SpreadTypes {
					label := scanner.SpreadTypeLabel(string(t))
					fmt.Fprintf(w, "%s\t%d\n", label, counts[label])
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&pool, "pool", 0, "Spreads to read from the store (default: ANALYTICS_POOL_LIMIT)")

	return cmd
}

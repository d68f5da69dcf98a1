package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

func topCmd(open opener) *cobra.Command {
	var (
		metric string
		n      int
		pool   int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print a leaderboard of the stored spreads",
		Long: `Rank the stored spreads by one metric, highest first.

Spreads whose risk/reward ratio is undefined (zero max loss) rank last
and print as n/a.

Example:
  spreadscan top
  spreadscan top --metric risk_reward_ratio -n 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := scanner.ParseMetric(metric)
			if err != nil {
				return err
			}
			if n <= 0 {
				return fmt.Errorf("-n must be positive, got %d", n)
			}

			return withStore(open, func(s *store) error {
				limit := pool
				if limit <= 0 {
					limit = s.cfg.ScannerPoolLimit
				}
				records, err := s.spreads.List(services.SortKey{Field: services.SortByExpectedValue, Descending: true}, limit)
				if err != nil {
					return err
				}
				view, err := scanner.Rank(records, m, n)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "RANK\tSYMBOL\tTYPE\t%s\n", scanner.SpreadTypeLabel(string(m)))
				for i, sp := range view.Spreads {
					value := "n/a"
					if v, ok := scanner.MetricValue(sp, m); ok {
						value = m.Display(v)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, sp.Symbol, scanner.SpreadTypeLabel(string(sp.SpreadType)), value)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&metric, "metric", string(scanner.MetricExpectedValue), "expected_value, profit_probability or risk_reward_ratio")
	cmd.Flags().IntVarP(&n, "count", "n", scanner.LeaderboardSize, "Number of spreads to print")
	cmd.Flags().IntVar(&pool, "pool", 0, "Spreads to read from the store (default: SCANNER_POOL_LIMIT)")

	return cmd
}

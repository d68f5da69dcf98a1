package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spreadscan/internal/seed"
	"spreadscan/internal/services"
)

func seedCmd(open opener) *cobra.Command {
	var glob string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load spread records from YAML seed files",
		Long: `Load every YAML file matching --glob into the spread store.

Records carrying an id that already exists are skipped, so seeding twice
is harmless.

Example:
  spreadscan seed
  spreadscan seed --glob 'fixtures/**/*.yaml'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(open, func(s *store) error {
				pattern := glob
				if pattern == "" {
					pattern = s.cfg.SeedGlob
				}

				result, err := seed.Run(s.spreads, pattern)
				if err != nil {
					return err
				}
				s.audit.Log("", services.AuditActionImportSpreads, "options_spread", "", "", map[string]interface{}{
					"source":   "seed",
					"files":    result.Files,
					"received": result.Received,
					"created":  result.Created,
				})

				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d records from %d file(s)\n",
					result.Created, result.Received, len(result.Files))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "Seed file pattern, ** matches nested directories (default: SEED_GLOB)")

	return cmd
}

// spreadscan is the operator CLI: it seeds the spread store from YAML files
// and prints leaderboards and summaries straight from the database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spreadscan/internal/config"
	"spreadscan/internal/database"
	"spreadscan/internal/logger"
	"spreadscan/internal/services"
)

// store is the slice of the service layer the commands need.
type store struct {
	cfg     *config.Config
	spreads services.SpreadServicer
	audit   services.AuditServicer
	close   func() error
}

// opener connects to the configured database.
type opener func() (*store, error)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd(openStore).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(open opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spreadscan",
		Short: "Operate the SpreadScan spread store",
		Long: `spreadscan seeds the spread store and inspects it from the terminal.

It reads the same environment as the API server (DB_DRIVER, DB_HOST, ...),
so DB_DRIVER=sqlite SQLITE_PATH=dev.db gives a scratch store.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(seedCmd(open))
	rootCmd.AddCommand(topCmd(open))
	rootCmd.AddCommand(summaryCmd(open))

	return rootCmd
}

func openStore() (*store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		return nil, err
	}

	db := manager.DB()
	return &store{
		cfg:     cfg,
		spreads: services.NewSpreadService(db),
		audit:   services.NewAuditService(db),
		close:   manager.Close,
	}, nil
}

// withStore opens the store for the duration of fn.
func withStore(open opener, fn func(s *store) error) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil {
			logger.Get().Warnw("closing database", "error", cerr)
		}
	}()
	return fn(s)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matthieukhl/crmd/internal/config"
	"github.com/matthieukhl/crmd/internal/database"
	"github.com/matthieukhl/crmd/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "crmd",
	Short: "CRM backend with a filter/sort/aggregate query API",
	Long: `crmd is a customer-relationship-management backend exposing customers,
products and orders through a query/mutation HTTP API with filtering,
ordering and aggregation.

Run it as a server, or use the CLI commands to migrate the schema, seed
demo data and run the scheduled batch jobs.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(mode string) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch mode {
	case "prod", "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// bootstrap loads config, builds the logger and opens the store. The
// returned cleanup closes the connection pool and flushes the logger.
func bootstrap() (*config.Config, *zap.SugaredLogger, *store.Store, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg.Log.Mode)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	st := store.New(db, log)
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = log.Sync()
	}
	return cfg, log, st, cleanup, nil
}

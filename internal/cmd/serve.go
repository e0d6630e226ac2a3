package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CRM API server",
	Long: `Start the CRM API server which provides:
- Query endpoints for customers, products and orders with filtering,
  ordering and aggregation
- Mutation endpoints for creating customers (single and bulk), products
  and orders`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 CRM backend starting...")

	cfg, log, st, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("✅ Database connected successfully")

	srv := server.NewServer(st, mutate.New(st, log), log)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

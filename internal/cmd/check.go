package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity and data volume",
	Long: `Check that the configured database is reachable and print per-entity
row counts. Useful after migrate or seed to verify the store state.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, st, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	fmt.Printf("🔍 Checking store (%s)...\n", cfg.DB.Driver)
	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	fmt.Println("✅ Store reachable")

	customers, products, orders, err := st.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}

	fmt.Printf("📊 Customers: %d | Products: %d | Orders: %d\n", customers, products, orders)
	return nil
}

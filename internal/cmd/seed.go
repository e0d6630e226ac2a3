package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/crmd/internal/database"
	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo CRM data",
	Long: `Seed the database with a small demo data set: three customers, two
products and one order. Safe to run repeatedly; existing rows are skipped.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, st, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(st.DB()); err != nil {
		return err
	}

	fmt.Println("🌱 Seeding demo data...")
	if err := seed.Run(context.Background(), st, mutate.New(st, log)); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Println("✅ Seeding complete")
	return nil
}

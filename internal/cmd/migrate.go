package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/crmd/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the CRM schema",
	Long: `Create or update the customers, products and orders tables plus the
order_products join table in the configured database.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, _, st, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("⚙️  Migrating schema...")
	if err := database.Migrate(st.DB()); err != nil {
		return err
	}

	fmt.Println("✅ Schema migrated")
	return nil
}

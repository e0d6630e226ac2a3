package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/matthieukhl/crmd/internal/models"
)

// Migrate creates or updates the CRM tables, including the order_products
// join table implied by the Order.Products association.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

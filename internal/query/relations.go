package query

import (
	"strings"

	"gorm.io/gorm"
)

// Relation-crossing order predicates. The product-side ones use EXISTS
// subqueries rather than joins so they compose with the total-amount
// aggregate without multiplying rows.

func customerNameContains(value string) Scope {
	pattern := "%" + strings.ToLower(value) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE ?", pattern)
	}
}

// anyProductNameContains matches orders where ANY linked product name
// contains value, case-insensitively.
func anyProductNameContains(value string) Scope {
	pattern := "%" + strings.ToLower(value) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`EXISTS (SELECT 1 FROM order_products`+
			` JOIN products ON products.id = order_products.product_id`+
			` WHERE order_products.order_id = orders.id AND LOWER(products.name) LIKE ?)`, pattern)
	}
}

func hasProductID(id uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`EXISTS (SELECT 1 FROM order_products`+
			` WHERE order_products.order_id = orders.id AND order_products.product_id = ?)`, id)
	}
}

package query

import (
	"github.com/matthieukhl/crmd/internal/models"
)

// orderTotalExpr is the derived order total as a correlated subquery: the
// sum of linked product prices, 0 for an order with no products. Evaluating
// it inline keeps total-based filtering and sorting in the same statement as
// every other predicate, so nothing is denormalized and nothing is cached.
const orderTotalExpr = `(SELECT COALESCE(SUM(products.price), 0)` +
	` FROM order_products JOIN products ON products.id = order_products.product_id` +
	` WHERE order_products.order_id = orders.id)`

// OrderSelect returns the column list for order reads, exposing the derived
// total under the total_amount alias that models.Order scans into.
func OrderSelect() string {
	return "orders.*, " + orderTotalExpr + " AS total_amount"
}

func totalGte(value float64) Scope {
	return gte(orderTotalExpr, value)
}

func totalLte(value float64) Scope {
	return lte(orderTotalExpr, value)
}

// Total is the in-memory reduction of the same aggregate, for entities whose
// product set is already loaded (mutation results, tests).
func Total(o models.Order) float64 {
	var sum float64
	for _, p := range o.Products {
		sum += p.Price
	}
	return sum
}

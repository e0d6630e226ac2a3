package query

import (
	"strings"

	"github.com/matthieukhl/crmd/internal/apperr"
)

// Sortable columns per entity. Keys are what callers pass in order_by;
// values are the SQL expression sorted on, which for total_amount is the
// derived aggregate itself.
var (
	customerSortColumns = map[string]string{
		"id":         "customers.id",
		"name":       "customers.name",
		"email":      "customers.email",
		"created_at": "customers.created_at",
	}
	productSortColumns = map[string]string{
		"id":    "products.id",
		"name":  "products.name",
		"price": "products.price",
		"stock": "products.stock",
	}
	orderSortColumns = map[string]string{
		"id":           "orders.id",
		"order_date":   "orders.order_date",
		"total_amount": orderTotalExpr,
	}
)

// orderClauses resolves sort keys into ORDER BY clauses. A "-" prefix means
// descending. Unknown keys are an invalid-query error, unlike unknown filter
// values which degrade to no restriction. An id ascending tiebreak is always
// appended so pagination is deterministic.
func orderClauses(keys []string, columns map[string]string, idColumn string) ([]string, error) {
	var clauses []string
	for _, raw := range keys {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		direction := " ASC"
		if strings.HasPrefix(key, "-") {
			direction = " DESC"
			key = strings.TrimPrefix(key, "-")
		}
		column, ok := columns[key]
		if !ok {
			return nil, apperr.InvalidQuery("unknown sort key %q", key)
		}
		clauses = append(clauses, column+direction)
	}
	return append(clauses, idColumn+" ASC"), nil
}

package query

import (
	"strconv"
	"time"
)

// Filters are closed structs: every recognized key is a typed optional
// field, decoded at the transport boundary. A nil field contributes no
// predicate; it never means "match null". Unrecognized keys are rejected at
// decode time, see params.go.

type CustomerFilter struct {
	Name         *string
	Email        *string
	Phone        *string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
}

func (f CustomerFilter) Scopes() []Scope {
	var scopes []Scope
	if f.Name != nil {
		scopes = append(scopes, containsFold("customers.name", *f.Name))
	}
	if f.Email != nil {
		scopes = append(scopes, containsFold("customers.email", *f.Email))
	}
	if f.Phone != nil {
		scopes = append(scopes, hasPrefix("customers.phone", *f.Phone))
	}
	if f.CreatedAtGte != nil {
		scopes = append(scopes, gte("customers.created_at", *f.CreatedAtGte))
	}
	if f.CreatedAtLte != nil {
		scopes = append(scopes, lte("customers.created_at", *f.CreatedAtLte))
	}
	return scopes
}

type ProductFilter struct {
	Name     *string
	PriceGte *float64
	PriceLte *float64
	StockGte *int64
	StockLte *int64
	// StockLessThan10 restricts to stock < 10 only when true. False is the
	// same as absent; it is not "stock >= 10".
	StockLessThan10 *bool
}

func (f ProductFilter) Scopes() []Scope {
	var scopes []Scope
	if f.Name != nil {
		scopes = append(scopes, containsFold("products.name", *f.Name))
	}
	if f.PriceGte != nil {
		scopes = append(scopes, gte("products.price", *f.PriceGte))
	}
	if f.PriceLte != nil {
		scopes = append(scopes, lte("products.price", *f.PriceLte))
	}
	if f.StockGte != nil {
		scopes = append(scopes, gte("products.stock", *f.StockGte))
	}
	if f.StockLte != nil {
		scopes = append(scopes, lte("products.stock", *f.StockLte))
	}
	if f.StockLessThan10 != nil && *f.StockLessThan10 {
		scopes = append(scopes, lt("products.stock", 10))
	}
	return scopes
}

type OrderFilter struct {
	OrderDateGte *time.Time
	OrderDateLte *time.Time
	CustomerName *string
	ProductName  *string
	// ProductID is kept raw: a non-numeric value restricts the query to an
	// empty result set instead of raising.
	ProductID      *string
	TotalAmountGte *float64
	TotalAmountLte *float64
}

func (f OrderFilter) Scopes() []Scope {
	var scopes []Scope
	if f.OrderDateGte != nil {
		scopes = append(scopes, gte("orders.order_date", *f.OrderDateGte))
	}
	if f.OrderDateLte != nil {
		scopes = append(scopes, lte("orders.order_date", *f.OrderDateLte))
	}
	if f.CustomerName != nil {
		scopes = append(scopes, customerNameContains(*f.CustomerName))
	}
	if f.ProductName != nil {
		scopes = append(scopes, anyProductNameContains(*f.ProductName))
	}
	if f.ProductID != nil {
		if id, err := strconv.ParseUint(*f.ProductID, 10, 64); err == nil {
			scopes = append(scopes, hasProductID(uint(id)))
		} else {
			scopes = append(scopes, matchNone())
		}
	}
	if f.TotalAmountGte != nil {
		scopes = append(scopes, totalGte(*f.TotalAmountGte))
	}
	if f.TotalAmountLte != nil {
		scopes = append(scopes, totalLte(*f.TotalAmountLte))
	}
	return scopes
}

package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matthieukhl/crmd/internal/apperr"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page is a stable ordered window over a result set.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type CustomerQuery struct {
	Filter  CustomerFilter
	OrderBy []string
	Page    Page
}

func (q CustomerQuery) OrderClauses() ([]string, error) {
	return orderClauses(q.OrderBy, customerSortColumns, "customers.id")
}

type ProductQuery struct {
	Filter  ProductFilter
	OrderBy []string
	Page    Page
}

func (q ProductQuery) OrderClauses() ([]string, error) {
	return orderClauses(q.OrderBy, productSortColumns, "products.id")
}

type OrderQuery struct {
	Filter  OrderFilter
	OrderBy []string
	Page    Page
}

func (q OrderQuery) OrderClauses() ([]string, error) {
	return orderClauses(q.OrderBy, orderSortColumns, "orders.id")
}

// Shared request parameters accepted alongside filter keys.
var pagingKeys = []string{"order_by", "page", "page_size"}

var (
	customerFilterKeys = []string{"name", "email", "phone", "created_at_gte", "created_at_lte"}
	productFilterKeys  = []string{"name", "price_gte", "price_lte", "stock_gte", "stock_lte", "stock_less_than_10"}
	orderFilterKeys    = []string{"order_date_gte", "order_date_lte", "customer_name", "product_name", "product_id", "total_amount_gte", "total_amount_lte"}
)

// ParseCustomerQuery decodes list parameters for customers. Unknown keys are
// an invalid-query error; malformed values for recognized keys degrade to
// "no restriction".
func ParseCustomerQuery(values url.Values) (CustomerQuery, error) {
	if err := checkKeys(values, customerFilterKeys); err != nil {
		return CustomerQuery{}, err
	}
	q := CustomerQuery{
		Filter: CustomerFilter{
			Name:         strParam(values, "name"),
			Email:        strParam(values, "email"),
			Phone:        strParam(values, "phone"),
			CreatedAtGte: timeParam(values, "created_at_gte"),
			CreatedAtLte: timeParam(values, "created_at_lte"),
		},
		OrderBy: orderByParam(values),
		Page:    pageParam(values),
	}
	if _, err := q.OrderClauses(); err != nil {
		return CustomerQuery{}, err
	}
	return q, nil
}

func ParseProductQuery(values url.Values) (ProductQuery, error) {
	if err := checkKeys(values, productFilterKeys); err != nil {
		return ProductQuery{}, err
	}
	q := ProductQuery{
		Filter: ProductFilter{
			Name:            strParam(values, "name"),
			PriceGte:        floatParam(values, "price_gte"),
			PriceLte:        floatParam(values, "price_lte"),
			StockGte:        intParam(values, "stock_gte"),
			StockLte:        intParam(values, "stock_lte"),
			StockLessThan10: boolParam(values, "stock_less_than_10"),
		},
		OrderBy: orderByParam(values),
		Page:    pageParam(values),
	}
	if _, err := q.OrderClauses(); err != nil {
		return ProductQuery{}, err
	}
	return q, nil
}

func ParseOrderQuery(values url.Values) (OrderQuery, error) {
	if err := checkKeys(values, orderFilterKeys); err != nil {
		return OrderQuery{}, err
	}
	q := OrderQuery{
		Filter: OrderFilter{
			OrderDateGte:   timeParam(values, "order_date_gte"),
			OrderDateLte:   timeParam(values, "order_date_lte"),
			CustomerName:   strParam(values, "customer_name"),
			ProductName:    strParam(values, "product_name"),
			ProductID:      strParam(values, "product_id"),
			TotalAmountGte: floatParam(values, "total_amount_gte"),
			TotalAmountLte: floatParam(values, "total_amount_lte"),
		},
		OrderBy: orderByParam(values),
		Page:    pageParam(values),
	}
	if _, err := q.OrderClauses(); err != nil {
		return OrderQuery{}, err
	}
	return q, nil
}

func checkKeys(values url.Values, filterKeys []string) error {
	allowed := make(map[string]bool, len(filterKeys)+len(pagingKeys))
	for _, k := range filterKeys {
		allowed[k] = true
	}
	for _, k := range pagingKeys {
		allowed[k] = true
	}
	for key := range values {
		if !allowed[key] {
			return apperr.InvalidQuery("unknown filter key %q", key)
		}
	}
	return nil
}

func strParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// timeParam accepts RFC 3339 timestamps as well as plain dates and the
// common space-separated datetime form. Anything else is no restriction.
func timeParam(values url.Values, key string) *time.Time {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func floatParam(values url.Values, key string) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func intParam(values url.Values, key string) *int64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func boolParam(values url.Values, key string) *bool {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// orderByParam collects sort keys from repeated order_by parameters and
// comma-separated lists, in caller order.
func orderByParam(values url.Values) []string {
	var keys []string
	for _, raw := range values["order_by"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				keys = append(keys, part)
			}
		}
	}
	return keys
}

func pageParam(values url.Values) Page {
	page := Page{Number: 1, Size: DefaultPageSize}
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		page.Number = n
	}
	if n, err := strconv.Atoi(values.Get("page_size")); err == nil && n > 0 {
		page.Size = n
		if page.Size > MaxPageSize {
			page.Size = MaxPageSize
		}
	}
	return page
}

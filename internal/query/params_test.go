package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
)

func TestParseCustomerQuery(t *testing.T) {
	t.Run("recognized keys populate the closed filter struct", func(t *testing.T) {
		q, err := ParseCustomerQuery(url.Values{
			"name":           {"ali"},
			"phone":          {"+1"},
			"created_at_gte": {"2025-01-01"},
			"order_by":       {"-created_at,name"},
			"page":           {"2"},
			"page_size":      {"10"},
		})
		require.NoError(t, err)
		require.NotNil(t, q.Filter.Name)
		assert.Equal(t, "ali", *q.Filter.Name)
		require.NotNil(t, q.Filter.Phone)
		assert.Equal(t, "+1", *q.Filter.Phone)
		require.NotNil(t, q.Filter.CreatedAtGte)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *q.Filter.CreatedAtGte)
		assert.Nil(t, q.Filter.Email)
		assert.Equal(t, []string{"-created_at", "name"}, q.OrderBy)
		assert.Equal(t, Page{Number: 2, Size: 10}, q.Page)
	})

	t.Run("unknown filter key is an invalid query error", func(t *testing.T) {
		_, err := ParseCustomerQuery(url.Values{"shoe_size": {"44"}})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidQuery))
	})

	t.Run("unknown sort key is an invalid query error", func(t *testing.T) {
		_, err := ParseCustomerQuery(url.Values{"order_by": {"shoe_size"}})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidQuery))
	})

	t.Run("malformed timestamp degrades to no restriction", func(t *testing.T) {
		q, err := ParseCustomerQuery(url.Values{"created_at_gte": {"not-a-date"}})
		require.NoError(t, err)
		assert.Nil(t, q.Filter.CreatedAtGte)
	})
}

func TestParseProductQuery(t *testing.T) {
	t.Run("numeric and boolean values", func(t *testing.T) {
		q, err := ParseProductQuery(url.Values{
			"price_gte":          {"10.5"},
			"stock_lte":          {"3"},
			"stock_less_than_10": {"true"},
		})
		require.NoError(t, err)
		require.NotNil(t, q.Filter.PriceGte)
		assert.Equal(t, 10.5, *q.Filter.PriceGte)
		require.NotNil(t, q.Filter.StockLte)
		assert.Equal(t, int64(3), *q.Filter.StockLte)
		require.NotNil(t, q.Filter.StockLessThan10)
		assert.True(t, *q.Filter.StockLessThan10)
	})

	t.Run("malformed number degrades to no restriction", func(t *testing.T) {
		q, err := ParseProductQuery(url.Values{"price_gte": {"cheap"}})
		require.NoError(t, err)
		assert.Nil(t, q.Filter.PriceGte)
	})
}

func TestParseOrderQuery(t *testing.T) {
	t.Run("product_id stays raw", func(t *testing.T) {
		q, err := ParseOrderQuery(url.Values{"product_id": {"abc"}})
		require.NoError(t, err)
		require.NotNil(t, q.Filter.ProductID)
		assert.Equal(t, "abc", *q.Filter.ProductID)
	})

	t.Run("total_amount is a sortable key", func(t *testing.T) {
		q, err := ParseOrderQuery(url.Values{"order_by": {"-total_amount", "order_date"}})
		require.NoError(t, err)
		clauses, err := q.OrderClauses()
		require.NoError(t, err)
		require.Len(t, clauses, 3)
		assert.Contains(t, clauses[0], "DESC")
		assert.Equal(t, "orders.order_date ASC", clauses[1])
		assert.Equal(t, "orders.id ASC", clauses[2])
	})
}

func TestPageDefaults(t *testing.T) {
	q, err := ParseOrderQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, q.Page)

	q, err = ParseOrderQuery(url.Values{"page": {"0"}, "page_size": {"9999"}})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page.Number)
	assert.Equal(t, MaxPageSize, q.Page.Size)

	assert.Equal(t, 0, Page{Number: 1, Size: 50}.Offset())
	assert.Equal(t, 100, Page{Number: 3, Size: 50}.Offset())
}

func TestOrderClausesAlwaysEndWithID(t *testing.T) {
	clauses, err := orderClauses(nil, customerSortColumns, "customers.id")
	require.NoError(t, err)
	assert.Equal(t, []string{"customers.id ASC"}, clauses)

	clauses, err = orderClauses([]string{"-name", " email "}, customerSortColumns, "customers.id")
	require.NoError(t, err)
	assert.Equal(t, []string{"customers.name DESC", "customers.email ASC", "customers.id ASC"}, clauses)
}

func TestTotalReduction(t *testing.T) {
	assert.Zero(t, Total(models.Order{}))
	assert.InDelta(t, 1519.99, Total(models.Order{Products: []models.Product{
		{Name: "Laptop", Price: 1000},
		{Name: "Tablet", Price: 499.99},
		{Name: "Mouse", Price: 20},
	}}), 0.001)
}

package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/matthieukhl/crmd/internal/database"
	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/server"
	"github.com/matthieukhl/crmd/internal/store"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := zap.NewNop().Sugar()
	st := store.New(db, log)
	return server.NewServer(st, mutate.New(st, log), log)
}

func doJSON(t *testing.T, srv *server.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "phone": "+1234567890",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created mutate.CustomerResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.NotNil(t, created.Customer)

	// business rejection is still a 200 with a structured result
	rec = doJSON(t, srv, http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Dup", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var rejected mutate.CustomerResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejected))
	assert.False(t, rejected.Success)
	assert.Equal(t, "customer with this email already exists", rejected.Message)

	rec = doJSON(t, srv, http.MethodGet, "/api/customers?name=ali", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data  []json.RawMessage `json:"data"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Len(t, list.Data, 1)
}

func TestBulkCustomerEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/customers/bulk", map[string]interface{}{
		"customers": []map[string]interface{}{
			{"name": "Alice", "email": "alice@example.com"},
			{"name": "Alice Again", "email": "alice@example.com"},
			{"name": "Carol", "email": "carol@example.com"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result mutate.BulkCustomerResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Customers, 2)
	require.Len(t, result.Errors, 1)
	assert.True(t, strings.HasPrefix(result.Errors[0], "Row 2: "))
}

func TestListValidation(t *testing.T) {
	srv := newTestServer(t)

	t.Run("unknown filter key is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/customers?shoe_size=44", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown sort key is a 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/orders?order_by=shoe_size", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric product_id is an empty 200, not an error", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/orders?product_id=abc", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list struct {
			Data  []json.RawMessage `json:"data"`
			Total int64             `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Zero(t, list.Total)
		assert.Empty(t, list.Data)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderFlow(t *testing.T) {
	srv := newTestServer(t)

	var customer mutate.CustomerResult
	rec := doJSON(t, srv, http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	require.True(t, customer.Success)

	var laptop, tablet mutate.ProductResult
	rec = doJSON(t, srv, http.MethodPost, "/api/products", map[string]interface{}{"name": "Laptop", "price": 1000})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &laptop))
	require.True(t, laptop.Success)
	rec = doJSON(t, srv, http.MethodPost, "/api/products", map[string]interface{}{"name": "Tablet", "price": 500})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tablet))
	require.True(t, tablet.Success)

	rec = doJSON(t, srv, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": fmt.Sprintf("%d", customer.Customer.ID),
		"product_ids": []string{fmt.Sprintf("%d", laptop.Product.ID), fmt.Sprintf("%d", tablet.Product.ID)},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var order mutate.OrderResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.True(t, order.Success)
	assert.InDelta(t, 1500, order.Order.TotalAmount, 0.001)

	rec = doJSON(t, srv, http.MethodGet, "/api/orders?order_by=-total_amount&total_amount_gte=1500", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data  []json.RawMessage `json:"data"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
}

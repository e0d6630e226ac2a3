package jobs_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/matthieukhl/crmd/internal/database"
	"github.com/matthieukhl/crmd/internal/jobs"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return store.New(db, zap.NewNop().Sugar())
}

func TestHeartbeatAppendsLivenessLine(t *testing.T) {
	st := newTestStore(t)
	path := filepath.Join(t.TempDir(), "heartbeat.txt")

	hb := jobs.NewHeartbeat(st, zap.NewNop().Sugar(), path)
	require.NoError(t, hb.Run(context.Background()))
	require.NoError(t, hb.Run(context.Background()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " CRM is alive"), "line %q", line)
	}
}

func TestOrderRemindersLogsRecentOrdersOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, st.CreateCustomer(ctx, &customer))
	product := models.Product{Name: "Laptop", Price: 1000, Stock: 5}
	require.NoError(t, st.CreateProduct(ctx, &product))

	recent := models.Order{CustomerID: customer.ID, OrderDate: time.Now().Add(-24 * time.Hour)}
	require.NoError(t, st.CreateOrder(ctx, &recent, []models.Product{product}))
	stale := models.Order{CustomerID: customer.ID, OrderDate: time.Now().Add(-30 * 24 * time.Hour)}
	require.NoError(t, st.CreateOrder(ctx, &stale, []models.Product{product}))

	path := filepath.Join(t.TempDir(), "reminders.txt")
	rem := jobs.NewOrderReminders(st, zap.NewNop().Sugar(), path, 7*24*time.Hour)
	require.NoError(t, rem.Run(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], fmt.Sprintf("Order ID: %d", recent.ID))
	assert.Contains(t, lines[0], "Customer Email: alice@example.com")
}

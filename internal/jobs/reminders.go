package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/matthieukhl/crmd/internal/query"
	"github.com/matthieukhl/crmd/internal/store"
)

// OrderReminders logs a reminder line for every order placed within the
// lookback window. It reads through the query core like any other caller:
// one order-date filter, default ordering, paged.
type OrderReminders struct {
	store  *store.Store
	log    *zap.SugaredLogger
	path   string
	window time.Duration
}

func NewOrderReminders(st *store.Store, log *zap.SugaredLogger, path string, window time.Duration) *OrderReminders {
	return &OrderReminders{store: st, log: log.With("job", "order_reminders"), path: path, window: window}
}

func (r *OrderReminders) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-r.window)
	processed := 0

	for page := 1; ; page++ {
		q := query.OrderQuery{
			Filter: query.OrderFilter{OrderDateGte: &cutoff},
			Page:   query.Page{Number: page, Size: query.MaxPageSize},
		}
		orders, _, err := r.store.ListOrders(ctx, q)
		if err != nil {
			return fmt.Errorf("failed to list recent orders: %w", err)
		}

		for _, order := range orders {
			timestamp := time.Now().Format("2006-01-02 15:04:05")
			line := fmt.Sprintf("%s - Order ID: %d, Customer Email: %s\n", timestamp, order.ID, order.Customer.Email)
			if err := appendLine(r.path, line); err != nil {
				return fmt.Errorf("failed to write reminder log: %w", err)
			}
			processed++
		}

		if len(orders) < query.MaxPageSize {
			break
		}
	}

	r.log.Infow("order reminders processed", "count", processed, "since", cutoff)
	return nil
}

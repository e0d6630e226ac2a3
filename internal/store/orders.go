package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/query"
)

// ListOrders executes one composed query over orders. The derived
// total_amount is selected inline, so total-based filters and sort keys see
// exactly the value the response carries.
func (s *Store) ListOrders(ctx context.Context, q query.OrderQuery) ([]models.Order, int64, error) {
	clauses, err := q.OrderClauses()
	if err != nil {
		return nil, 0, err
	}
	scopes := q.Filter.Scopes()

	countTx := s.db.WithContext(ctx).Model(&models.Order{})
	for _, scope := range scopes {
		countTx = scope(countTx)
	}
	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}

	tx := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Select(query.OrderSelect()).
		Preload("Customer").
		Preload("Products")
	for _, scope := range scopes {
		tx = scope(tx)
	}
	for _, clause := range clauses {
		tx = tx.Order(clause)
	}
	orders := []models.Order{}
	if err := tx.Limit(q.Page.Size).Offset(q.Page.Offset()).Find(&orders).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}
	return orders, total, nil
}

// CreateOrder inserts the order and assigns its full product link set in one
// transaction: either both are visible afterwards or neither is.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, products []models.Product) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products", "Customer").Create(order).Error; err != nil {
			return err
		}
		return tx.Model(order).Association("Products").Replace(products)
	})
	if err != nil {
		return apperr.Store(err)
	}
	order.Products = products
	return nil
}

func (s *Store) CustomerHasOrders(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, apperr.Store(err)
	}
	return count > 0, nil
}

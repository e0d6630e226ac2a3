package store

import (
	"context"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/query"
)

func (s *Store) ListProducts(ctx context.Context, q query.ProductQuery) ([]models.Product, int64, error) {
	clauses, err := q.OrderClauses()
	if err != nil {
		return nil, 0, err
	}
	scopes := q.Filter.Scopes()

	countTx := s.db.WithContext(ctx).Model(&models.Product{})
	for _, scope := range scopes {
		countTx = scope(countTx)
	}
	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}

	tx := s.db.WithContext(ctx).Model(&models.Product{})
	for _, scope := range scopes {
		tx = scope(tx)
	}
	for _, clause := range clauses {
		tx = tx.Order(clause)
	}
	products := []models.Product{}
	if err := tx.Limit(q.Page.Size).Offset(q.Page.Offset()).Find(&products).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}
	return products, total, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

// ProductsByIDs returns the products matching ids. Duplicate or unknown ids
// simply resolve to fewer rows; the mutation layer compares counts.
func (s *Store) ProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return products, nil
}

func (s *Store) ProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if notFound(err) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Store(err)
	}
	return &product, nil
}

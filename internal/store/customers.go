package store

import (
	"context"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/query"
)

// ListCustomers executes one composed query: filter conjunction, ordering
// with id tiebreak, and a paginated window, plus a matching total count.
func (s *Store) ListCustomers(ctx context.Context, q query.CustomerQuery) ([]models.Customer, int64, error) {
	clauses, err := q.OrderClauses()
	if err != nil {
		return nil, 0, err
	}
	scopes := q.Filter.Scopes()

	countTx := s.db.WithContext(ctx).Model(&models.Customer{})
	for _, scope := range scopes {
		countTx = scope(countTx)
	}
	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}

	tx := s.db.WithContext(ctx).Model(&models.Customer{})
	for _, scope := range scopes {
		tx = scope(tx)
	}
	for _, clause := range clauses {
		tx = tx.Order(clause)
	}
	customers := []models.Customer{}
	if err := tx.Limit(q.Page.Size).Offset(q.Page.Offset()).Find(&customers).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}
	return customers, total, nil
}

func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		if isDuplicate(err) {
			return apperr.Conflict("customer with this email already exists")
		}
		return apperr.Store(err)
	}
	return nil
}

func (s *Store) CustomerEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, apperr.Store(err)
	}
	return count > 0, nil
}

func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if notFound(err) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, apperr.Store(err)
	}
	return &customer, nil
}

func (s *Store) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		if notFound(err) {
			return nil, apperr.NotFound("customer not found")
		}
		return nil, apperr.Store(err)
	}
	return &customer, nil
}

package store

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
)

// Store is the single gateway to the relational backing store. Reads run the
// composed query produced by the query package; writes are transactional.
type Store struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Store {
	return &Store{db: db, log: log.With("component", "store")}
}

// DB exposes the underlying gorm handle for migrations and tooling.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperr.Store(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// Counts returns per-entity row counts, for the check command.
func (s *Store) Counts(ctx context.Context) (customers, products, orders int64, err error) {
	tx := s.db.WithContext(ctx)
	if err = tx.Model(&models.Customer{}).Count(&customers).Error; err != nil {
		return 0, 0, 0, apperr.Store(err)
	}
	if err = tx.Model(&models.Product{}).Count(&products).Error; err != nil {
		return 0, 0, 0, apperr.Store(err)
	}
	if err = tx.Model(&models.Order{}).Count(&orders).Error; err != nil {
		return 0, 0, 0, apperr.Store(err)
	}
	return customers, products, orders, nil
}

// isDuplicate detects unique-constraint violations across the three
// supported drivers.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") || // mysql
		strings.Contains(msg, "duplicate key value") // postgres
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Scope is a composable predicate over a gorm query. Filters produce one
// scope per active field; the store applies them as a conjunction.
type Scope func(*gorm.DB) *gorm.DB

// containsFold matches rows whose column contains value, case-insensitively.
// LOWER on both sides keeps behavior identical across postgres, mysql and
// sqlite collations.
func containsFold(column, value string) Scope {
	pattern := "%" + strings.ToLower(value) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern)
	}
}

// hasPrefix matches rows whose column starts with value, e.g. phone "+1".
func hasPrefix(column, value string) Scope {
	pattern := value + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s LIKE ?", column), pattern)
	}
}

// gte and lte are inclusive range bounds.
func gte(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s >= ?", column), value)
	}
}

func lte(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s <= ?", column), value)
	}
}

func lt(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s < ?", column), value)
	}
}

// matchNone restricts the query to an empty result set. Used where a strict
// value failed to parse and the contract is "empty page, not an error".
func matchNone() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("1 = 0")
	}
}

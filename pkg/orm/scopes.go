// Package orm holds reusable gorm scopes and instrumentation shared by the
// repositories.
//
//	db.Scopes(
//	    orm.Contains("products.name", f.Name),
//	    orm.Range("products.price", f.MinPrice, f.MaxPrice),
//	    orm.OrderBy("products.created_at", true),
//	).Find(&products)
package orm

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope is a gorm scope function.
type Scope = func(*gorm.DB) *gorm.DB

// Contains filters column by a case-insensitive substring. An empty value
// leaves the query untouched.
func Contains(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	}
}

// Equals filters column by exact value. An empty value leaves the query
// untouched.
func Equals(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// Range filters column to lo <= column <= hi. Either bound may be nil.
func Range[T any](column string, lo, hi *T) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if lo != nil {
			db = db.Where(column+" >= ?", *lo)
		}
		if hi != nil {
			db = db.Where(column+" <= ?", *hi)
		}
		return db
	}
}

// OrderBy appends an ORDER BY on column. column must come from a closed
// set of identifiers; it is quoted, never interpolated.
func OrderBy(column string, desc bool) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
}

// When applies scope only if cond holds.
func When(cond bool, scope Scope) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if !cond {
			return db
		}
		return scope(db)
	}
}

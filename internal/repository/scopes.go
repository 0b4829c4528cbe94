package repository

import (
	"truedoc-admin/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paginate applies the page window, leaving the query unbounded when no size is set.
func paginate(page entity.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Size <= 0 {
			return db
		}
		return db.Limit(page.Size).Offset(page.Offset())
	}
}

// orderBy sorts by the given column or falls back to the default one.
// Callers validate sort.Column against their whitelist; it is still quoted as an identifier.
func orderBy(sort entity.Sort, fallback string, fallbackDesc bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, desc := sort.Column, sort.Desc
		if column == "" {
			column, desc = fallback, fallbackDesc
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
}

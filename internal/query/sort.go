package query

import (
	"strings"

	"gorm.io/gorm"
)

// Order is a concrete (column, direction) sort.
type Order struct {
	Field string
	Desc  bool
}

// SortTable enumerates the sort keys one entity family supports. Keys
// are matched case-insensitively; anything unmatched falls back to
// Default, which must be a deterministic order so that paging across
// repeated calls is stable. Ties within the chosen column are not broken
// by a secondary column.
type SortTable struct {
	Default Order
	Keys    map[string]Order
}

// Resolve maps a client-supplied sort key to a concrete order.
func (t SortTable) Resolve(key string) Order {
	if o, ok := t.Keys[strings.ToLower(strings.TrimSpace(key))]; ok {
		return o
	}
	return t.Default
}

// OrderBy applies the order to a GORM query. Orders over invalid column
// names are ignored.
func OrderBy(db *gorm.DB, o Order) *gorm.DB {
	if !validFieldName.MatchString(o.Field) {
		return db
	}
	dir := " ASC"
	if o.Desc {
		dir = " DESC"
	}
	return db.Order(o.Field + dir)
}

// Package query turns generic filter/sort parameters into gorm clauses.
// Unknown column names are skipped rather than rejected, so a stale or
// hand-typed query string never fails a request.
package query

import (
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// ParseFilterParams decodes a JSON object of column -> value (or list of
// values). Malformed input yields an empty map.
func ParseFilterParams(s string) map[string]any {
	filters := map[string]any{}
	if s == "" {
		return filters
	}
	if err := json.Unmarshal([]byte(s), &filters); err != nil {
		return map[string]any{}
	}
	return filters
}

// ParseSortParams decodes a JSON object like {"sort_by": "make", "order": "desc"}.
func ParseSortParams(s string) map[string]string {
	params := map[string]string{}
	if s == "" {
		return params
	}
	if err := json.Unmarshal([]byte(s), &params); err != nil {
		return map[string]string{}
	}
	return params
}

// ApplyFilters adds one predicate per recognized filter key: equality for a
// scalar value, IN for a list. Keys are applied in sorted order so the
// generated SQL is stable.
func ApplyFilters(tx *gorm.DB, filters map[string]any, columns map[string]bool) *gorm.DB {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		if columns[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch value := filters[key].(type) {
		case []any:
			tx = tx.Where(fmt.Sprintf("%s IN ?", key), value)
		default:
			tx = tx.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}
	return tx
}

// ApplySort orders by sortBy when it names a recognized column; otherwise
// the query is returned untouched. Any order other than "desc" sorts
// ascending.
func ApplySort(tx *gorm.DB, sortBy, order string, columns map[string]bool) *gorm.DB {
	if sortBy == "" || !columns[sortBy] {
		return tx
	}
	if order == "desc" {
		return tx.Order(fmt.Sprintf("%s DESC", sortBy))
	}
	return tx.Order(fmt.Sprintf("%s ASC", sortBy))
}

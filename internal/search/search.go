// Package search implements the shared free-text search, sorting, and
// pagination applied to every entity's /search endpoint.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"fleet_admin/internal/query"
)

const DefaultPerPage = 10

// Config describes how one entity participates in search: which columns a
// term is substring-matched against, which are compared by exact equality
// when the term is an integer, and the full column set for sort/filter
// validation.
type Config struct {
	StringFields  []string
	NumericFields []string
	Columns       map[string]bool
	DefaultSortBy string
}

// Params are the caller-supplied search arguments. Zero values fall back
// to defaults: page 1, per-page 10, the entity's default sort column.
type Params struct {
	Term    string
	SortBy  string
	Order   string
	Page    int
	PerPage int
	Filters map[string]any
}

// Service runs searches for one entity type against an injected DB handle.
type Service[T any] struct {
	db  *gorm.DB
	cfg Config
}

func NewService[T any](db *gorm.DB, cfg Config) *Service[T] {
	return &Service[T]{db: db, cfg: cfg}
}

// Search returns the requested page of matching rows plus the total match
// count over the filtered set (the count ignores the page slice).
func (s *Service[T]) Search(p Params) ([]T, int64, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = s.cfg.DefaultSortBy
	}

	base := func() *gorm.DB {
		tx := s.db.Model(new(T))
		tx = query.ApplyFilters(tx, p.Filters, s.cfg.Columns)
		if cond, args := s.termCondition(p.Term); cond != "" {
			tx = tx.Where(cond, args...)
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := query.ApplySort(base(), sortBy, p.Order, s.cfg.Columns)

	offset := (p.Page - 1) * p.PerPage
	rows := make([]T, 0, p.PerPage)
	if err := tx.Offset(offset).Limit(p.PerPage).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// termCondition builds the OR group for a search term: ILIKE over the
// string fields, and exact equality over the numeric fields when the term
// parses as an integer.
func (s *Service[T]) termCondition(term string) (string, []any) {
	if term == "" {
		return "", nil
	}

	var clauses []string
	var args []any

	if n, err := strconv.Atoi(term); err == nil {
		for _, field := range s.cfg.NumericFields {
			clauses = append(clauses, fmt.Sprintf("%s = ?", field))
			args = append(args, n)
		}
	}
	for _, field := range s.cfg.StringFields {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE ?", field))
		args = append(args, "%"+term+"%")
	}

	return "(" + strings.Join(clauses, " OR ") + ")", args
}

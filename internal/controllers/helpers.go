package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"fleet_admin/internal/query"
	"fleet_admin/internal/search"
)

// parseID reads the :id path parameter. On garbage input it writes the 400
// itself and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// searchParams reads the shared search query string: query, sortBy,
// sortOrder, page, per_page, an optional JSON filters object, and an
// optional JSON sort object ({"sort_by": ..., "order": ...}) that fills
// in whichever of sortBy/sortOrder the flat parameters left blank.
func searchParams(c *gin.Context) search.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = search.DefaultPerPage
	}

	sortBy := c.Query("sortBy")
	order := c.Query("sortOrder")
	if sortParams := query.ParseSortParams(c.Query("sort")); len(sortParams) > 0 {
		if sortBy == "" {
			sortBy = sortParams["sort_by"]
		}
		if order == "" {
			order = sortParams["order"]
		}
	}
	if order == "" {
		order = "asc"
	}

	return search.Params{
		Term:    c.Query("query"),
		SortBy:  sortBy,
		Order:   order,
		Page:    page,
		PerPage: perPage,
		Filters: query.ParseFilterParams(c.Query("filters")),
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (code 23505), from either the pgx or lib/pq driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

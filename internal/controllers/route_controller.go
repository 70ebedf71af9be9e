package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/search"
)

type RouteController struct {
	routes   *repository.RouteRepository
	searcher *search.Service[models.Route]
}

func NewRouteController(db *gorm.DB) *RouteController {
	return &RouteController{
		routes:   repository.NewRouteRepository(db),
		searcher: search.NewService[models.Route](db, search.RouteConfig),
	}
}

// Create registers a new route
func (ctl *RouteController) Create(c *gin.Context) {
	var route models.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route input: " + err.Error()})
		return
	}

	if err := ctl.routes.Create(&route); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// Get retrieves a route by ID
func (ctl *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	route, err := ctl.routes.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching route: " + err.Error()})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// Update applies a partial update; only fields present in the body change
func (ctl *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.RoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	route, err := ctl.routes.Update(id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route: " + err.Error()})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// Delete removes a route by ID
func (ctl *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	route, err := ctl.routes.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route: " + err.Error()})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}

// Search lists routes matching the query term, sorted and paginated
func (ctl *RouteController) Search(c *gin.Context) {
	p := searchParams(c)
	routes, total, err := ctl.searcher.Search(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching routes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         p.Page,
		"per_page":     p.PerPage,
		"total_routes": total,
		"routes":       routes,
	})
}

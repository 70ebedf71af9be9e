package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/search"
)

type TripLogController struct {
	trips    *repository.TripLogRepository
	searcher *search.Service[models.TripLog]
}

func NewTripLogController(db *gorm.DB) *TripLogController {
	return &TripLogController{
		trips:    repository.NewTripLogRepository(db),
		searcher: search.NewService[models.TripLog](db, search.TripLogConfig),
	}
}

// Create records a new trip log. The referenced vehicle, driver, and route
// must exist; a recorded mileage_end advances the vehicle's mileage.
func (ctl *TripLogController) Create(c *gin.Context) {
	var trip models.TripLog
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip log input: " + err.Error()})
		return
	}

	if err := ctl.trips.Create(&trip); err != nil {
		var refErr *repository.ReferencedEntityNotFoundError
		if errors.As(err, &refErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": refErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip log: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// Get retrieves a trip log by ID
func (ctl *TripLogController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := ctl.trips.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trip log: " + err.Error()})
		return
	}
	if trip == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip log not found"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// Update applies a partial update; only fields present in the body change
func (ctl *TripLogController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.TripLogPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	trip, err := ctl.trips.Update(id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip log: " + err.Error()})
		return
	}
	if trip == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip log not found"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// Delete removes a trip log by ID
func (ctl *TripLogController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := ctl.trips.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip log: " + err.Error()})
		return
	}
	if trip == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip log not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip log deleted successfully"})
}

// Search lists trip logs matching the query term, sorted and paginated
func (ctl *TripLogController) Search(c *gin.Context) {
	p := searchParams(c)
	trips, total, err := ctl.searcher.Search(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching trip logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":            p.Page,
		"per_page":        p.PerPage,
		"total_trip_logs": total,
		"trip_logs":       trips,
	})
}

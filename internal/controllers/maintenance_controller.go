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

type MaintenanceController struct {
	records  *repository.MaintenanceRepository
	searcher *search.Service[models.MaintenanceRecord]
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{
		records:  repository.NewMaintenanceRepository(db),
		searcher: search.NewService[models.MaintenanceRecord](db, search.MaintenanceConfig),
	}
}

// Create records a maintenance entry; the vehicle and driver must exist
func (ctl *MaintenanceController) Create(c *gin.Context) {
	var record models.MaintenanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance record input: " + err.Error()})
		return
	}

	if err := ctl.records.Create(&record); err != nil {
		var refErr *repository.ReferencedEntityNotFoundError
		if errors.As(err, &refErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": refErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance record: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Get retrieves a maintenance record by ID
func (ctl *MaintenanceController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := ctl.records.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching maintenance record: " + err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance Record not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update applies a partial update; only fields present in the body change
func (ctl *MaintenanceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.MaintenancePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	record, err := ctl.records.Update(id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance record: " + err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance Record not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes a maintenance record by ID
func (ctl *MaintenanceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := ctl.records.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance record: " + err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance Record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted successfully"})
}

// Search lists maintenance records matching the query term, sorted and
// paginated
func (ctl *MaintenanceController) Search(c *gin.Context) {
	p := searchParams(c)
	records, total, err := ctl.searcher.Search(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching maintenance records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":          p.Page,
		"per_page":      p.PerPage,
		"total_records": total,
		"records":       records,
	})
}

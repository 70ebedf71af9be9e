package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/search"
)

type DriverController struct {
	drivers  *repository.DriverRepository
	searcher *search.Service[models.Driver]
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{
		drivers:  repository.NewDriverRepository(db),
		searcher: search.NewService[models.Driver](db, search.DriverConfig),
	}
}

// Create registers a new driver
func (ctl *DriverController) Create(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	if err := ctl.drivers.Create(&driver); err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "license_number or email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// Get retrieves a driver by ID
func (ctl *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := ctl.drivers.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching driver: " + err.Error()})
		return
	}
	if driver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Update applies a partial update; only fields present in the body change
func (ctl *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.DriverPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	driver, err := ctl.drivers.Update(id, patch)
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "license_number or email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}
	if driver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Delete removes a driver by ID
func (ctl *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := ctl.drivers.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver: " + err.Error()})
		return
	}
	if driver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}

// Search lists drivers matching the query term, sorted and paginated
func (ctl *DriverController) Search(c *gin.Context) {
	p := searchParams(c)
	drivers, total, err := ctl.searcher.Search(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":          p.Page,
		"per_page":      p.PerPage,
		"total_drivers": total,
		"drivers":       drivers,
	})
}

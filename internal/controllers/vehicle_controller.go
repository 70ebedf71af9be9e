package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/search"
)

type VehicleController struct {
	vehicles *repository.VehicleRepository
	searcher *search.Service[models.Vehicle]
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{
		vehicles: repository.NewVehicleRepository(db),
		searcher: search.NewService[models.Vehicle](db, search.VehicleConfig),
	}
}

// Create registers a new vehicle
func (ctl *VehicleController) Create(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	if err := ctl.vehicles.Create(&vehicle); err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "registration_number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// Get retrieves a vehicle by ID
func (ctl *VehicleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := ctl.vehicles.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching vehicle: " + err.Error()})
		return
	}
	if vehicle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Update applies a partial update; only fields present in the body change
func (ctl *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.VehiclePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	vehicle, err := ctl.vehicles.Update(id, patch)
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "registration_number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}
	if vehicle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle by ID
func (ctl *VehicleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := ctl.vehicles.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle: " + err.Error()})
		return
	}
	if vehicle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// Search lists vehicles matching the query term, sorted and paginated
func (ctl *VehicleController) Search(c *gin.Context) {
	p := searchParams(c)
	vehicles, total, err := ctl.searcher.Search(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":           p.Page,
		"per_page":       p.PerPage,
		"total_vehicles": total,
		"vehicles":       vehicles,
	})
}

package repository

import (
	"errors"

	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// VehicleRepository owns CRUD access to the vehicles table.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// VehiclePatch carries a partial update. Only non-nil fields are applied.
type VehiclePatch struct {
	Make               *string `json:"make"`
	Model              *string `json:"model"`
	Year               *int    `json:"year"`
	RegistrationNumber *string `json:"registration_number"`
	Status             *string `json:"status"`
	Mileage            *int    `json:"mileage"`
	FuelType           *string `json:"fuel_type"`
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// GetByID returns (nil, nil) for a missing row; absence is a normal result.
func (r *VehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(id uint, patch VehiclePatch) (*models.Vehicle, error) {
	vehicle, err := r.GetByID(id)
	if err != nil || vehicle == nil {
		return vehicle, err
	}

	if patch.Make != nil {
		vehicle.Make = *patch.Make
	}
	if patch.Model != nil {
		vehicle.Model = *patch.Model
	}
	if patch.Year != nil {
		vehicle.Year = *patch.Year
	}
	if patch.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *patch.RegistrationNumber
	}
	if patch.Status != nil {
		vehicle.Status = *patch.Status
	}
	if patch.Mileage != nil {
		vehicle.Mileage = *patch.Mileage
	}
	if patch.FuelType != nil {
		vehicle.FuelType = *patch.FuelType
	}

	if err := r.db.Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes the row and returns it as it was before removal.
func (r *VehicleRepository) Delete(id uint) (*models.Vehicle, error) {
	vehicle, err := r.GetByID(id)
	if err != nil || vehicle == nil {
		return vehicle, err
	}
	if err := r.db.Delete(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

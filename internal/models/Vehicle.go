// internal/models/vehicle.go
package models

import (
	"time"
)

// Vehicle is a fleet vehicle. Mileage mirrors the latest trip log's
// mileage_end recorded against it (see repository.TripLogRepository).
type Vehicle struct {
	ID                 uint      `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	Make               string    `gorm:"size:50;not null" json:"make" binding:"required"`
	Model              string    `gorm:"size:50;not null" json:"model" binding:"required"`
	Year               int       `gorm:"not null" json:"year" binding:"required"`
	RegistrationNumber string    `gorm:"size:50;not null;unique" json:"registration_number" binding:"required"`
	Status             string    `gorm:"size:20;not null" json:"status" binding:"required"`
	Mileage            int       `gorm:"not null" json:"mileage"`
	FuelType           string    `gorm:"size:20;not null" json:"fuel_type" binding:"required"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

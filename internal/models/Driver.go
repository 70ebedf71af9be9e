// internal/models/driver.go
package models

import (
	"time"
)

// Driver holds a driver's license details and optional vehicle assignment.
// AssignedVehicleID is enforced at the store level via the association;
// the application does not re-validate it on create.
type Driver struct {
	ID                uint      `gorm:"column:driver_id;primaryKey" json:"driver_id"`
	Name              string    `gorm:"size:100;not null" json:"name" binding:"required"`
	LicenseNumber     string    `gorm:"size:50;not null;unique" json:"license_number" binding:"required"`
	LicenseExpiryDate time.Time `gorm:"type:date;not null" json:"license_expiry_date" binding:"required"`
	PhoneNumber       string    `gorm:"size:20;not null" json:"phone_number" binding:"required"`
	Email             string    `gorm:"size:100;not null;unique" json:"email" binding:"required,email"`
	AssignedVehicleID *uint     `json:"assigned_vehicle_id"`
	AssignedVehicle   *Vehicle  `gorm:"foreignKey:AssignedVehicleID" json:"assigned_vehicle,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

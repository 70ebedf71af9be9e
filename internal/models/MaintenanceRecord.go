package models

import (
	"time"
)

// MaintenanceRecord is a service/repair entry against a vehicle, logged by
// the driver who brought it in.
type MaintenanceRecord struct {
	ID              uint      `gorm:"column:maintenance_id;primaryKey" json:"maintenance_id"`
	VehicleID       uint      `gorm:"not null;index" json:"vehicle_id" binding:"required"`
	DriverID        uint      `gorm:"not null;index" json:"driver_id" binding:"required"`
	MaintenanceType string    `gorm:"size:20;not null" json:"maintenance_type" binding:"required"`
	Description     string    `gorm:"type:text" json:"description"`
	Cost            float64   `gorm:"type:decimal(10,2);not null" json:"cost" binding:"required"`
	MaintenanceDate time.Time `gorm:"type:date;not null" json:"maintenance_date" binding:"required"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

package models

import (
	"time"
)

// TripLog records a single trip made by a driver on a route.
// EndTime and MileageEnd stay nil until the trip is completed.
type TripLog struct {
	ID           uint       `gorm:"column:trip_id;primaryKey" json:"trip_id"`
	VehicleID    uint       `gorm:"not null;index" json:"vehicle_id" binding:"required"`
	DriverID     uint       `gorm:"not null;index" json:"driver_id" binding:"required"`
	RouteID      uint       `gorm:"not null;index" json:"route_id" binding:"required"`
	StartTime    time.Time  `gorm:"not null" json:"start_time" binding:"required"`
	EndTime      *time.Time `json:"end_time"`
	MileageStart int        `gorm:"not null" json:"mileage_start"`
	MileageEnd   *int       `json:"mileage_end"`
	Status       string     `gorm:"size:20;not null" json:"status" binding:"required"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (TripLog) TableName() string {
	return "trip_logs"
}

package models

import (
	"time"
)

// Route represents a service path between two locations.
// EstimatedDuration is in minutes.
type Route struct {
	ID                uint      `gorm:"column:route_id;primaryKey" json:"route_id"`
	Origin            string    `gorm:"size:100;not null" json:"origin" binding:"required"`
	Destination       string    `gorm:"size:100;not null" json:"destination" binding:"required"`
	Distance          float64   `gorm:"not null" json:"distance" binding:"required"`
	EstimatedDuration int       `gorm:"not null" json:"estimated_duration" binding:"required"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Route) TableName() string {
	return "routes"
}

package repository

import (
	"errors"

	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// RouteRepository owns CRUD access to the routes table.
type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// RoutePatch carries a partial update. Only non-nil fields are applied.
type RoutePatch struct {
	Origin            *string  `json:"origin"`
	Destination       *string  `json:"destination"`
	Distance          *float64 `json:"distance"`
	EstimatedDuration *int     `json:"estimated_duration"`
}

func (r *RouteRepository) Create(route *models.Route) error {
	return r.db.Create(route).Error
}

func (r *RouteRepository) GetByID(id uint) (*models.Route, error) {
	var route models.Route
	err := r.db.First(&route, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) Update(id uint, patch RoutePatch) (*models.Route, error) {
	route, err := r.GetByID(id)
	if err != nil || route == nil {
		return route, err
	}

	if patch.Origin != nil {
		route.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		route.Destination = *patch.Destination
	}
	if patch.Distance != nil {
		route.Distance = *patch.Distance
	}
	if patch.EstimatedDuration != nil {
		route.EstimatedDuration = *patch.EstimatedDuration
	}

	if err := r.db.Save(route).Error; err != nil {
		return nil, err
	}
	return route, nil
}

func (r *RouteRepository) Delete(id uint) (*models.Route, error) {
	route, err := r.GetByID(id)
	if err != nil || route == nil {
		return route, err
	}
	if err := r.db.Delete(route).Error; err != nil {
		return nil, err
	}
	return route, nil
}

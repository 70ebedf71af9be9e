package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// MaintenanceRepository owns CRUD access to the maintenance_records table.
// Creation validates that the vehicle and driver exist.
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// MaintenancePatch carries a partial update. Only non-nil fields are applied.
type MaintenancePatch struct {
	VehicleID       *uint      `json:"vehicle_id"`
	DriverID        *uint      `json:"driver_id"`
	MaintenanceType *string    `json:"maintenance_type"`
	Description     *string    `json:"description"`
	Cost            *float64   `json:"cost"`
	MaintenanceDate *time.Time `json:"maintenance_date"`
	Notes           *string    `json:"notes"`
}

func (r *MaintenanceRepository) Create(record *models.MaintenanceRecord) error {
	if err := checkReference(r.db, &models.Vehicle{}, record.VehicleID, "vehicle"); err != nil {
		return err
	}
	if err := checkReference(r.db, &models.Driver{}, record.DriverID, "driver"); err != nil {
		return err
	}
	return r.db.Create(record).Error
}

func (r *MaintenanceRepository) GetByID(id uint) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRepository) Update(id uint, patch MaintenancePatch) (*models.MaintenanceRecord, error) {
	record, err := r.GetByID(id)
	if err != nil || record == nil {
		return record, err
	}

	if patch.VehicleID != nil {
		record.VehicleID = *patch.VehicleID
	}
	if patch.DriverID != nil {
		record.DriverID = *patch.DriverID
	}
	if patch.MaintenanceType != nil {
		record.MaintenanceType = *patch.MaintenanceType
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.Cost != nil {
		record.Cost = *patch.Cost
	}
	if patch.MaintenanceDate != nil {
		record.MaintenanceDate = *patch.MaintenanceDate
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}

	if err := r.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *MaintenanceRepository) Delete(id uint) (*models.MaintenanceRecord, error) {
	record, err := r.GetByID(id)
	if err != nil || record == nil {
		return record, err
	}
	if err := r.db.Delete(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

package repository

import (
	"errors"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// TripLogRepository owns CRUD access to the trip_logs table. Creating a
// trip log validates that the vehicle, driver, and route all exist, and a
// recorded ending mileage advances the vehicle's mileage (see
// syncVehicleMileage).
type TripLogRepository struct {
	db *gorm.DB
}

func NewTripLogRepository(db *gorm.DB) *TripLogRepository {
	return &TripLogRepository{db: db}
}

// TripLogPatch carries a partial update. Only fields present in the body
// are applied; the nullable columns use Optional so an explicit null
// clears them instead of being skipped.
type TripLogPatch struct {
	VehicleID    *uint               `json:"vehicle_id"`
	DriverID     *uint               `json:"driver_id"`
	RouteID      *uint               `json:"route_id"`
	StartTime    *time.Time          `json:"start_time"`
	EndTime      Optional[time.Time] `json:"end_time"`
	MileageStart *int                `json:"mileage_start"`
	MileageEnd   Optional[int]       `json:"mileage_end"`
	Status       *string             `json:"status"`
	Notes        *string             `json:"notes"`
}

func (r *TripLogRepository) Create(trip *models.TripLog) error {
	if err := checkReference(r.db, &models.Vehicle{}, trip.VehicleID, "vehicle"); err != nil {
		return err
	}
	if err := checkReference(r.db, &models.Driver{}, trip.DriverID, "driver"); err != nil {
		return err
	}
	if err := checkReference(r.db, &models.Route{}, trip.RouteID, "route"); err != nil {
		return err
	}

	if err := r.db.Create(trip).Error; err != nil {
		return err
	}
	r.syncVehicleMileage(trip)
	return nil
}

func (r *TripLogRepository) GetByID(id uint) (*models.TripLog, error) {
	var trip models.TripLog
	err := r.db.First(&trip, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripLogRepository) Update(id uint, patch TripLogPatch) (*models.TripLog, error) {
	trip, err := r.GetByID(id)
	if err != nil || trip == nil {
		return trip, err
	}

	if patch.VehicleID != nil {
		trip.VehicleID = *patch.VehicleID
	}
	if patch.DriverID != nil {
		trip.DriverID = *patch.DriverID
	}
	if patch.RouteID != nil {
		trip.RouteID = *patch.RouteID
	}
	if patch.StartTime != nil {
		trip.StartTime = *patch.StartTime
	}
	if patch.EndTime.Set {
		trip.EndTime = patch.EndTime.Value
	}
	if patch.MileageStart != nil {
		trip.MileageStart = *patch.MileageStart
	}
	if patch.MileageEnd.Set {
		trip.MileageEnd = patch.MileageEnd.Value
	}
	if patch.Status != nil {
		trip.Status = *patch.Status
	}
	if patch.Notes != nil {
		trip.Notes = *patch.Notes
	}

	if err := r.db.Save(trip).Error; err != nil {
		return nil, err
	}
	r.syncVehicleMileage(trip)
	return trip, nil
}

func (r *TripLogRepository) Delete(id uint) (*models.TripLog, error) {
	trip, err := r.GetByID(id)
	if err != nil || trip == nil {
		return trip, err
	}
	if err := r.db.Delete(trip).Error; err != nil {
		return nil, err
	}
	return trip, nil
}

// syncVehicleMileage advances the vehicle's recorded mileage to the trip's
// ending mileage. The write is a separate commit from the trip-log write;
// a missing vehicle skips the sync without failing the request.
func (r *TripLogRepository) syncVehicleMileage(trip *models.TripLog) {
	if trip.MileageEnd == nil {
		return
	}

	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, trip.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("vehicle_id", trip.VehicleID).Warn("mileage sync skipped: vehicle missing")
		} else {
			logrus.WithError(err).Warn("mileage sync: vehicle lookup failed")
		}
		return
	}

	if err := r.db.Model(&vehicle).Update("mileage", *trip.MileageEnd).Error; err != nil {
		logrus.WithError(err).Warn("mileage sync: vehicle update failed")
	}
}

package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// DriverRepository owns CRUD access to the drivers table. The optional
// vehicle assignment is left to the store's foreign-key constraint; the
// application does not pre-validate it.
type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// DriverPatch carries a partial update. Only fields present in the body
// are applied; the nullable vehicle assignment uses Optional so an
// explicit null unassigns the vehicle instead of being skipped.
type DriverPatch struct {
	Name              *string        `json:"name"`
	LicenseNumber     *string        `json:"license_number"`
	LicenseExpiryDate *time.Time     `json:"license_expiry_date"`
	PhoneNumber       *string        `json:"phone_number"`
	Email             *string        `json:"email"`
	AssignedVehicleID Optional[uint] `json:"assigned_vehicle_id"`
}

func (r *DriverRepository) Create(driver *models.Driver) error {
	return r.db.Create(driver).Error
}

func (r *DriverRepository) GetByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.First(&driver, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Update(id uint, patch DriverPatch) (*models.Driver, error) {
	driver, err := r.GetByID(id)
	if err != nil || driver == nil {
		return driver, err
	}

	if patch.Name != nil {
		driver.Name = *patch.Name
	}
	if patch.LicenseNumber != nil {
		driver.LicenseNumber = *patch.LicenseNumber
	}
	if patch.LicenseExpiryDate != nil {
		driver.LicenseExpiryDate = *patch.LicenseExpiryDate
	}
	if patch.PhoneNumber != nil {
		driver.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		driver.Email = *patch.Email
	}
	if patch.AssignedVehicleID.Set {
		driver.AssignedVehicleID = patch.AssignedVehicleID.Value
	}

	if err := r.db.Save(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (r *DriverRepository) Delete(id uint) (*models.Driver, error) {
	driver, err := r.GetByID(id)
	if err != nil || driver == nil {
		return driver, err
	}
	if err := r.db.Delete(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

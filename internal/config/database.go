package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_admin/internal/models"
)

// Connect opens the database and migrates the fleet schema. The returned
// handle is the only one the process uses; callers inject it into the
// repositories instead of reading a package-level global.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Driver{},
		&models.Route{},
		&models.TripLog{},
		&models.MaintenanceRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}

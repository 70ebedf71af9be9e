package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ReferencedEntityNotFoundError is returned when a foreign key supplied on
// create does not resolve. It is distinct from plain row absence, which
// repositories report as a nil result, so the HTTP layer can answer 400
// instead of 404.
type ReferencedEntityNotFoundError struct {
	Entity string
}

func (e *ReferencedEntityNotFoundError) Error() string {
	return fmt.Sprintf("Assigned %s does not exist", e.Entity)
}

// referenceExists reports whether a row with the given id exists for the
// model's table.
func referenceExists(db *gorm.DB, model any, id uint) (bool, error) {
	err := db.First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// checkReference resolves a foreign key or returns the typed validation
// error naming which reference failed.
func checkReference(db *gorm.DB, model any, id uint, entity string) error {
	ok, err := referenceExists(db, model, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferencedEntityNotFoundError{Entity: entity}
	}
	return nil
}

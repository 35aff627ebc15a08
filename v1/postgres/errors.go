package postgres

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound is returned by single-record lookups that match nothing.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidData is returned when gorm rejects the query input.
	ErrInvalidData = errors.New("invalid data")

	// ErrNotConnected is returned when no database handle is available.
	ErrNotConnected = errors.New("postgres client is not initialized")
)

// TranslateError maps gorm sentinel errors onto this package's errors.
// Other errors are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return ErrInvalidData
	}
	return err
}

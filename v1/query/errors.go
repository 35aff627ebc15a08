package query

import (
	"errors"
	"fmt"
)

// ErrInvalidCriteria is the sentinel for criteria rejected at translation time.
var ErrInvalidCriteria = errors.New("invalid criteria")

// InvalidCriteriaError describes which field of a criteria value was rejected.
type InvalidCriteriaError struct {
	Field  string
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidCriteria, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidCriteria) hold.
func (e *InvalidCriteriaError) Is(target error) bool {
	return target == ErrInvalidCriteria
}

func invalid(field, format string, args ...any) error {
	return &InvalidCriteriaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

package stockrecords

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no position exists with the requested id.
var ErrNotFound = errors.New("stock not found")

// ErrDuplicateSymbol indicates a create request whose symbol is already held
// by a live position.
var ErrDuplicateSymbol = errors.New("symbol already exists")

// ValidationError indicates a request rejected at the boundary: a missing
// required field, a malformed purchase date, or a non-positive share count.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsClientError reports whether the error maps to a malformed-data outcome
// rather than a not-found or server failure.
func IsClientError(err error) bool {
	var verr *ValidationError
	return errors.Is(err, ErrDuplicateSymbol) || errors.As(err, &verr)
}

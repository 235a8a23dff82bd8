package models

import (
	"errors"
	"fmt"
)

// ErrEmptySource indicates the source has no usable header row.
var ErrEmptySource = errors.New("empty source")

// ErrMalformedRange indicates the source range ends before it starts.
var ErrMalformedRange = errors.New("malformed range")

// ErrNoDataCells indicates the source has a range but no data cells.
var ErrNoDataCells = errors.New("no data cells")

// ValidationError reports a structural precondition violated by a grid
// or its source. Kind is one of the sentinel errors above.
type ValidationError struct {
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid source: %v", e.Kind)
	}
	return fmt.Sprintf("invalid source: %v: %s", e.Kind, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

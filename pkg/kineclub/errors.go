package kineclub

import (
	"errors"
	"fmt"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported format.
var ErrInvalidFormat = errors.New("unsupported input format")

// Validation failures, re-exported for callers of this package.
var (
	ErrEmptySource    = models.ErrEmptySource
	ErrMalformedRange = models.ErrMalformedRange
	ErrNoDataCells    = models.ErrNoDataCells
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Source    string
	Component string // "open", "load", "extract"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source, component string, err error) *ExtractionError {
	return &ExtractionError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}

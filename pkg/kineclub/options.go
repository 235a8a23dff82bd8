// Package kineclub extracts player and team assessment records from
// club spreadsheets.
package kineclub

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatXLSX reads an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatCSV reads delimited text.
	FormatCSV Format = "csv"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatXLSX, FormatCSV:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be auto, xlsx, or csv)", s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Format specifies the input format.
	Format Format
	// Comma is the CSV delimiter; zero auto-detects.
	Comma rune
	// Logger receives load and column-classification traces.
	// If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolveFormat returns the concrete format for a path.
func (o Options) ResolveFormat(path string) (Format, error) {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

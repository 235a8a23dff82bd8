package kineclub

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/extractor"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/parser"
	"github.com/xuri/excelize/v2"
)

// Result is a report together with how it was obtained.
type Result struct {
	// Report is the extracted players and team.
	Report *models.Report
	// Sheet describes the loaded sheet.
	Sheet *parser.SheetInfo
	// Decisions lists the classification of every header column.
	Decisions []extractor.ColumnDecision
}

// Extract extracts the player and team records of a spreadsheet file.
func Extract(path string, opts Options) (*models.Report, error) {
	res, err := Run(path, opts)
	if err != nil {
		return nil, err
	}
	return res.Report, nil
}

// Run loads a spreadsheet file and extracts its records, keeping the
// load and classification details.
func Run(path string, opts Options) (*Result, error) {
	format, err := opts.ResolveFormat(path)
	if err != nil {
		return nil, NewExtractionError(filepath.Base(path), "open", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, NewExtractionError(filepath.Base(path), "open", err)
	}
	defer f.Close()

	return RunReader(f, filepath.Base(path), format, opts)
}

// RunReader is Run for an already opened source. name only labels errors
// and logs; format must not be FormatAuto.
func RunReader(r io.Reader, name string, format Format, opts Options) (*Result, error) {
	log := opts.logger().With().Str("source", name).Logger()

	grid, sheet, err := load(r, format, opts)
	if err != nil {
		return nil, NewExtractionError(name, "load", err)
	}
	log.Debug().
		Str("sheet", sheet.Name).
		Str("range", sheet.Ref).
		Int("rows", sheet.Range.Rows()).
		Int("cols", sheet.Range.Cols()).
		Int("cells", sheet.DataCells).
		Msg("loaded grid")

	report, decisions, err := extractor.ExtractWithDecisions(grid)
	if err != nil {
		return nil, NewExtractionError(name, "extract", err)
	}
	for _, d := range decisions {
		log.Debug().
			Int("col", d.HeaderIndex).
			Str("header", d.Header).
			Stringer("role", d.Role).
			Str("reason", d.Reason).
			Msg("column classified")
	}
	log.Info().
		Int("players", len(report.Players)).
		Bool("team", len(report.Team.Scores) > 0 || len(report.Team.Metrics) > 0).
		Msg("extracted")

	return &Result{Report: &report, Sheet: sheet, Decisions: decisions}, nil
}

// ExtractGrid extracts records from an already loaded grid.
func ExtractGrid(g models.Grid) (*models.Report, error) {
	report, err := extractor.Extract(g)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func load(r io.Reader, format Format, opts Options) (models.Grid, *parser.SheetInfo, error) {
	switch format {
	case FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, nil, errors.Join(ErrInvalidFormat, err)
		}
		defer f.Close()
		return parser.ReadXLSX(f)
	case FormatCSV:
		return parser.ReadCSV(r, parser.CSVOptions{Comma: opts.Comma})
	default:
		return nil, nil, ErrInvalidFormat
	}
}

// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/antoine-piarou/kineclub/pkg/kineclub/summary"
)

// ToJSON serializes a report. Player and team lists are always present,
// empty lists included.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	normalized := *report
	if normalized.Players == nil {
		normalized.Players = []models.PlayerRecord{}
	}
	return marshal(normalized, pretty)
}

// SummaryToJSON serializes category summaries.
func SummaryToJSON(rows []summary.CategorySummary, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []summary.CategorySummary{}
	}
	return marshal(rows, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON writes data followed by a newline.
func WriteJSON(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// FileName returns the JSON file name for an input path:
// "bilans/U17.xlsx" becomes "U17.json".
func FileName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// WriteFile writes data to dir, creating the directory if needed, and
// returns the written path.
func WriteFile(dir, inputPath string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(inputPath))
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", err
	}
	return path, nil
}

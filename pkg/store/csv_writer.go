package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/geoio"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// CSVWriter writes planned settlements to a CSV file.
type CSVWriter struct {
	file *os.File
}

// NewCSVWriter creates (or truncates) the file at path. Intermediate
// directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}
	return &CSVWriter{file: f}, nil
}

// Write writes the header and one row per record.
func (c *CSVWriter) Write(records []settlement.Record) error {
	if err := geoio.WriteCSV(c.file, records); err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (c *CSVWriter) Close() error {
	return c.file.Close()
}

// Package viatable loads and writes the via geometry tables that drive grid
// placement. A table is an ordered set of records, one per via, giving the
// via's base position and drill/outer diameters in millimeters.
//
// Two on-disk forms are supported: CSV with the header
// index,X,Y,ID,OD and JSON as an object keyed by stringified index.
// Processing order is always ascending numeric index, regardless of the
// order records appear in the file.
package viatable

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Record describes one via to place. All lengths are millimeters.
type Record struct {
	Index int     // Unique non-negative index; ascending index is processing order
	X     float64 // Base X position
	Y     float64 // Base Y position
	ID    float64 // Drill (inner) diameter, must be > 0
	OD    float64 // Outer diameter, must be >= ID
}

// Table is an immutable, index-ordered collection of via records.
type Table struct {
	records []Record
}

// New builds a Table from records, validating and sorting them by index.
func New(records []Record) (*Table, error) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for i, rec := range sorted {
		if rec.Index < 0 {
			return nil, fmt.Errorf("record %d: negative index %d", i, rec.Index)
		}
		if i > 0 && sorted[i-1].Index == rec.Index {
			return nil, fmt.Errorf("duplicate index %d", rec.Index)
		}
		if rec.ID <= 0 {
			return nil, fmt.Errorf("index %d: inner diameter must be > 0, got %v", rec.Index, rec.ID)
		}
		if rec.OD < rec.ID {
			return nil, fmt.Errorf("index %d: outer diameter %v smaller than inner diameter %v", rec.Index, rec.OD, rec.ID)
		}
	}

	return &Table{records: sorted}, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the records in ascending index order.
// The returned slice must not be modified.
func (t *Table) Records() []Record {
	return t.records
}

// ReadFile loads a via table, choosing the format from the file extension
// (.csv or .json).
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open via table: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported via table format %q (expected .csv or .json)", filepath.Ext(path))
	}
}

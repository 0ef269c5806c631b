// Package layout computes grid placements for ion funnel/guide
// electrode structures and uniform re-spacing of existing footprints.
//
// The package is deliberately independent of any board editor: placement
// is pure arithmetic over via table records, and board mutation goes
// through the narrow BoardWriter interface so the logic tests without a
// board file present.
package layout

import (
	"fmt"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/viatable"
)

// GridConfig holds the grid geometry. Steps are millimeters.
type GridConfig struct {
	XStep   float64 // Column pitch, > 0
	YStep   float64 // Row pitch, > 0
	Columns int     // Columns before wrapping to the next row, >= 1
}

// DefaultGridConfig is the spacing preloaded into the settings dialog,
// sized for a stacked-ring ion funnel electrode pitch.
func DefaultGridConfig() GridConfig {
	return GridConfig{XStep: 1.880, YStep: 1.630, Columns: 10}
}

// Validate rejects configurations the settings dialog would refuse.
func (c GridConfig) Validate() error {
	if c.XStep <= 0 {
		return fmt.Errorf("X step must be > 0, got %v", c.XStep)
	}
	if c.YStep <= 0 {
		return fmt.Errorf("Y step must be > 0, got %v", c.YStep)
	}
	if c.Columns < 1 {
		return fmt.Errorf("column count must be at least 1, got %d", c.Columns)
	}
	return nil
}

// Placement is one record resolved to its grid cell.
type Placement struct {
	Record viatable.Record
	Row    int
	Col    int
	Pos    pcb.Position
}

// Placements assigns each record of the table, in ascending-index order,
// to a grid cell: the i-th record lands in row i/Columns, column
// i%Columns, offset from its own base position by the step sizes.
// An empty table yields no placements and no error.
func Placements(table *viatable.Table, cfg GridConfig) ([]Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := table.Records()
	placements := make([]Placement, 0, len(records))

	for i, rec := range records {
		row := i / cfg.Columns
		col := i % cfg.Columns

		placements = append(placements, Placement{
			Record: rec,
			Row:    row,
			Col:    col,
			Pos: pcb.Position{
				X: rec.X + cfg.XStep*float64(col),
				Y: rec.Y + cfg.YStep*float64(row),
			},
		})
	}

	return placements, nil
}

// GridSize returns the rows and columns actually occupied by n records.
func (c GridConfig) GridSize(n int) (rows, cols int) {
	if n == 0 {
		return 0, 0
	}
	rows = (n + c.Columns - 1) / c.Columns
	cols = c.Columns
	if n < cols {
		cols = n
	}
	return rows, cols
}

package layout

import (
	"fmt"
	"strconv"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/viatable"
)

// BoardWriter is the slice of the board document the placer needs.
// *pcb.Document satisfies it.
type BoardWriter interface {
	AddVia(spec pcb.ViaSpec) error
	AddFilledCircle(layer string, center pcb.Position, radius float64) error
	AddText(layer string, at pcb.Position, text string, size, thickness float64) error
}

// PlaceOptions controls the decoration written with each via.
type PlaceOptions struct {
	Mask          bool    // Add F.Mask/B.Mask cutout circles sized to the outer diameter
	TextSize      float64 // Silkscreen label height/width in mm
	TextThickness float64 // Silkscreen stroke width in mm
	LabelOffset   float64 // Gap between via edge and label in mm
}

// DefaultPlaceOptions is the standard silkscreen styling: 4mm labels
// with 0.5mm strokes, 4mm below the via edge.
func DefaultPlaceOptions() PlaceOptions {
	return PlaceOptions{
		Mask:          true,
		TextSize:      4,
		TextThickness: 0.5,
		LabelOffset:   4,
	}
}

// PlaceResult summarizes a placement run.
type PlaceResult struct {
	Placed int // Vias written
	Rows   int // Grid rows occupied
	Cols   int // Grid columns occupied
}

// Place writes one via per table record onto the grid, each with two
// solder mask cutouts (unless disabled) and a numbered silkscreen label.
// Records process in ascending-index order; an empty table places
// nothing and reports a zero-size grid.
func Place(w BoardWriter, table *viatable.Table, cfg GridConfig, opts PlaceOptions) (PlaceResult, error) {
	placements, err := Placements(table, cfg)
	if err != nil {
		return PlaceResult{}, err
	}

	for _, p := range placements {
		// Label first, then the via on top of it.
		labelPos := pcb.Position{
			X: p.Pos.X,
			Y: p.Pos.Y + p.Record.OD/2 + opts.LabelOffset,
		}
		label := strconv.Itoa(p.Record.Index + 1)
		if err := w.AddText(pcb.LayerFSilk, labelPos, label, opts.TextSize, opts.TextThickness); err != nil {
			return PlaceResult{}, fmt.Errorf("index %d: failed to add label: %w", p.Record.Index, err)
		}

		if err := w.AddVia(pcb.ViaSpec{
			Position: p.Pos,
			Drill:    p.Record.ID,
			Size:     p.Record.OD,
		}); err != nil {
			return PlaceResult{}, fmt.Errorf("index %d: failed to add via: %w", p.Record.Index, err)
		}

		if opts.Mask {
			radius := p.Record.OD / 2
			for _, layer := range []string{pcb.LayerBMask, pcb.LayerFMask} {
				if err := w.AddFilledCircle(layer, p.Pos, radius); err != nil {
					return PlaceResult{}, fmt.Errorf("index %d: failed to add %s cutout: %w", p.Record.Index, layer, err)
				}
			}
		}
	}

	rows, cols := cfg.GridSize(len(placements))
	return PlaceResult{Placed: len(placements), Rows: rows, Cols: cols}, nil
}

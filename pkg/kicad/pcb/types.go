package pcb

import (
	"math"

	"github.com/sriglab/sriggrid/pkg/kicad/sexp"
)

// Standard layer names used when placing funnel elements.
const (
	LayerFCu      = "F.Cu"
	LayerBCu      = "B.Cu"
	LayerFMask    = "F.Mask"
	LayerBMask    = "B.Mask"
	LayerFSilk    = "F.SilkS"
	LayerEdgeCuts = "Edge.Cuts"
)

// Position is a 2D board coordinate in millimeters. The board file stores
// millimeters directly; conversion to KiCad internal units only matters
// when talking to a live pcbnew instance, not here.
type Position struct {
	X float64
	Y float64
}

// Layer is one entry of the board's layer table.
type Layer struct {
	Number int    // Layer ordinal
	Name   string // e.g. "F.Cu", "B.Mask", "F.SilkS"
	Type   string // signal, power, mixed, user
}

// Net is an electrical net declaration.
type Net struct {
	Number int
	Name   string
}

// Footprint is the placed representation of a component. It keeps a
// handle to its node in the document tree so position edits write
// through to the file.
type Footprint struct {
	Library   string   // Library id, e.g. "Capacitor_SMD:C_0603"
	Reference string   // Reference designator, e.g. "C12"
	Value     string   // Component value
	Layer     string   // Placement layer (F.Cu or B.Cu)
	Position  Position // Board position in mm
	Angle     float64  // Rotation in degrees

	node *sexp.List
}

// Via is a plated through hole. Sizes are diameters in mm.
type Via struct {
	Position Position
	Size     float64 // Outer (annular) diameter
	Drill    float64 // Drill diameter
	Layers   []string
	Net      int
}

// Graphic is a board-level graphical item (gr_line, gr_circle, gr_rect,
// gr_text). Only the fields relevant to its Kind are set.
type Graphic struct {
	Kind   string // line, circle, rect, text
	Layer  string
	Start  Position // line, rect
	End    Position // line, rect, circle (point on circumference)
	Center Position // circle
	Text     string   // text
	At       Position // text
	TextSize float64  // text height in mm
	Width    float64  // stroke width
	Filled   bool
}

// Radius returns the center-to-end distance for circle graphics.
func (g *Graphic) Radius() float64 {
	return math.Hypot(g.End.X-g.Center.X, g.End.Y-g.Center.Y)
}

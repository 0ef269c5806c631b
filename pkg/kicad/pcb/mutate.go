package pcb

import (
	"fmt"

	"github.com/sriglab/sriggrid/pkg/kicad/sexp"
)

// ViaSpec describes a via to add. Diameters are millimeters.
type ViaSpec struct {
	Position Position
	Drill    float64 // Inner (drill) diameter
	Size     float64 // Outer diameter
	Net      int
}

// AddVia appends a through via to the board.
func (d *Document) AddVia(spec ViaSpec) error {
	if spec.Drill <= 0 {
		return fmt.Errorf("via drill must be > 0, got %v", spec.Drill)
	}
	if spec.Size < spec.Drill {
		return fmt.Errorf("via size %v smaller than drill %v", spec.Size, spec.Drill)
	}

	node := sexp.L("via",
		sexp.L("at", sexp.Float(spec.Position.X), sexp.Float(spec.Position.Y)),
		sexp.L("size", sexp.Float(spec.Size)),
		sexp.L("drill", sexp.Float(spec.Drill)),
		sexp.L("layers", sexp.String(LayerFCu), sexp.String(LayerBCu)),
		sexp.L("net", sexp.Int(spec.Net)),
	)
	d.root.Append(node)

	d.Vias = append(d.Vias, Via{
		Position: spec.Position,
		Size:     spec.Size,
		Drill:    spec.Drill,
		Layers:   []string{LayerFCu, LayerBCu},
		Net:      spec.Net,
	})
	return nil
}

// AddFilledCircle appends a solid-filled circle graphic on the given
// layer. Used for the solder mask cutouts around funnel vias.
func (d *Document) AddFilledCircle(layer string, center Position, radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("circle radius must be > 0, got %v", radius)
	}

	node := sexp.L("gr_circle",
		sexp.L("center", sexp.Float(center.X), sexp.Float(center.Y)),
		sexp.L("end", sexp.Float(center.X+radius), sexp.Float(center.Y)),
		sexp.L("stroke", sexp.L("width", sexp.Float(0)), sexp.L("type", sexp.Symbol("solid"))),
		sexp.L("fill", sexp.Symbol("solid")),
		sexp.L("layer", sexp.String(layer)),
	)
	d.root.Append(node)

	d.Graphics = append(d.Graphics, Graphic{
		Kind:   "circle",
		Layer:  layer,
		Center: center,
		End:    Position{X: center.X + radius, Y: center.Y},
		Filled: true,
	})
	return nil
}

// AddText appends a text graphic. Size is the character height/width and
// thickness the stroke width, both millimeters.
func (d *Document) AddText(layer string, at Position, text string, size, thickness float64) error {
	if text == "" {
		return fmt.Errorf("text must not be empty")
	}

	node := sexp.L("gr_text",
		sexp.String(text),
		sexp.L("at", sexp.Float(at.X), sexp.Float(at.Y)),
		sexp.L("layer", sexp.String(layer)),
		sexp.L("effects",
			sexp.L("font",
				sexp.L("size", sexp.Float(size), sexp.Float(size)),
				sexp.L("thickness", sexp.Float(thickness)),
			),
		),
	)
	d.root.Append(node)

	d.Graphics = append(d.Graphics, Graphic{
		Kind:     "text",
		Layer:    layer,
		Text:     text,
		At:       at,
		TextSize: size,
	})
	return nil
}

// SetPosition moves the footprint, writing the new coordinates through
// to the document tree. Rotation is preserved.
func (fp *Footprint) SetPosition(pos Position) error {
	at, found := fp.node.Find("at")
	if !found {
		return fmt.Errorf("footprint %s: missing 'at' node", fp.Reference)
	}

	items := []sexp.Node{sexp.Symbol("at"), sexp.Float(pos.X), sexp.Float(pos.Y)}
	if at.Len() > 3 {
		// Keep the rotation (and any trailing flags like unlocked).
		items = append(items, at.Items[3:]...)
	}
	at.Items = items

	fp.Position = pos
	return nil
}

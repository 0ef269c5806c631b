// Package pcb reads, edits, and writes KiCad board files (.kicad_pcb).
//
// The package keeps the full parsed S-expression tree alongside decoded
// views of the sections it understands (layers, nets, footprints, vias,
// board graphics). Edits go through mutation methods that update both the
// tree and the views, and Save re-serializes the tree, so sections this
// package does not model survive a load/edit/save cycle untouched.
package pcb

import (
	"fmt"
	"io"
	"os"

	"github.com/sriglab/sriggrid/pkg/kicad/sexp"
)

// MinSupportedVersion is the oldest accepted board format (KiCad 6.0).
const MinSupportedVersion = 20211014

// Document is an open board file.
type Document struct {
	root *sexp.List

	Version    int    // File format version
	Generator  string // Generating tool, e.g. "pcbnew"
	Layers     []Layer
	Nets       []Net
	Footprints []Footprint
	Vias       []Via
	Graphics   []Graphic
}

// Load reads and parses a board file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a board document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := sexp.ParseOne(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if root.Name() != "kicad_pcb" {
		return nil, fmt.Errorf("not a KiCad PCB file: expected 'kicad_pcb', got '%s'", root.Name())
	}

	doc := &Document{root: root}

	if err := doc.parseHeader(); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	if err := doc.parseLayers(); err != nil {
		return nil, fmt.Errorf("failed to parse layers: %w", err)
	}
	if err := doc.parseNets(); err != nil {
		return nil, fmt.Errorf("failed to parse nets: %w", err)
	}
	if err := doc.parseFootprints(); err != nil {
		return nil, fmt.Errorf("failed to parse footprints: %w", err)
	}
	if err := doc.parseVias(); err != nil {
		return nil, fmt.Errorf("failed to parse vias: %w", err)
	}
	doc.parseGraphics()

	return doc, nil
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board file: %w", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes the document tree to w.
func (d *Document) Write(w io.Writer) error {
	if err := sexp.Write(w, d.root); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	return nil
}

// FootprintByReference returns the footprint with the given reference
// designator.
func (d *Document) FootprintByReference(ref string) (*Footprint, bool) {
	for i := range d.Footprints {
		if d.Footprints[i].Reference == ref {
			return &d.Footprints[i], true
		}
	}
	return nil, false
}

// LayerByName looks the layer up in the board's layer table.
func (d *Document) LayerByName(name string) (*Layer, bool) {
	for i := range d.Layers {
		if d.Layers[i].Name == name {
			return &d.Layers[i], true
		}
	}
	return nil, false
}

// parseHeader extracts version and generator.
// Format: (kicad_pcb (version 20221018) (generator pcbnew) ...)
// Older files use (host pcbnew "(6.0.0)") instead of generator.
func (d *Document) parseHeader() error {
	versionNode, found := d.root.Find("version")
	if !found {
		return fmt.Errorf("missing required 'version' field")
	}

	ver, err := versionNode.Int(1)
	if err != nil {
		return fmt.Errorf("failed to parse version: %w", err)
	}
	if ver < MinSupportedVersion {
		return fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)", ver, MinSupportedVersion)
	}
	d.Version = ver

	d.Generator = "unknown"
	if host, found := d.root.Find("host"); found {
		if name := host.Text(1); name != "" {
			d.Generator = name
		}
	} else if gen, found := d.root.Find("generator"); found {
		if name := gen.Text(1); name != "" {
			d.Generator = name
		}
	}

	return nil
}

// parseLayers extracts the layer table.
// Format: (layers (0 "F.Cu" signal) (31 "B.Cu" signal) ...)
func (d *Document) parseLayers() error {
	layersNode, found := d.root.Find("layers")
	if !found {
		// A board with no layer table is degenerate but parseable.
		return nil
	}

	for _, item := range layersNode.Items[1:] {
		entry, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		number, err := entry.Int(0)
		if err != nil {
			return fmt.Errorf("failed to parse layer number: %w", err)
		}

		name := entry.Text(1)
		if name == "" {
			return fmt.Errorf("layer %d: missing name", number)
		}

		layerType := entry.Text(2)
		if layerType == "" {
			layerType = "user"
		}

		d.Layers = append(d.Layers, Layer{Number: number, Name: name, Type: layerType})
	}

	return nil
}

// parseNets extracts net declarations: (net 0 "") (net 1 "GND") ...
func (d *Document) parseNets() error {
	for _, netNode := range d.root.FindAll("net") {
		number, err := netNode.Int(1)
		if err != nil {
			return fmt.Errorf("failed to parse net number: %w", err)
		}
		d.Nets = append(d.Nets, Net{Number: number, Name: netNode.Text(2)})
	}
	return nil
}

// parseFootprints extracts component footprints. KiCad 6/7 stores the
// reference in (fp_text reference "R1" ...); KiCad 8 uses
// (property "Reference" "R1" ...). Both are handled.
func (d *Document) parseFootprints() error {
	for _, fpNode := range d.root.FindAll("footprint") {
		fp := Footprint{
			Library: fpNode.Text(1),
			node:    fpNode,
		}

		if layerNode, found := fpNode.Find("layer"); found {
			fp.Layer = layerNode.Text(1)
		}

		at, found := fpNode.Find("at")
		if !found {
			return fmt.Errorf("footprint %q: missing required 'at' position", fp.Library)
		}
		x, err := at.Float(1)
		if err != nil {
			return fmt.Errorf("footprint %q: failed to parse X position: %w", fp.Library, err)
		}
		y, err := at.Float(2)
		if err != nil {
			return fmt.Errorf("footprint %q: failed to parse Y position: %w", fp.Library, err)
		}
		fp.Position = Position{X: x, Y: y}
		if angle, err := at.Float(3); err == nil {
			fp.Angle = angle
		}

		for _, textNode := range fpNode.FindAll("fp_text") {
			switch textNode.Text(1) {
			case "reference":
				fp.Reference = textNode.Text(2)
			case "value":
				fp.Value = textNode.Text(2)
			}
		}
		for _, propNode := range fpNode.FindAll("property") {
			switch propNode.Text(1) {
			case "Reference":
				fp.Reference = propNode.Text(2)
			case "Value":
				fp.Value = propNode.Text(2)
			}
		}

		d.Footprints = append(d.Footprints, fp)
	}

	return nil
}

// parseVias extracts via declarations.
// Format: (via (at X Y) (size S) (drill D) (layers "F.Cu" "B.Cu") (net N))
func (d *Document) parseVias() error {
	for _, viaNode := range d.root.FindAll("via") {
		var via Via

		at, found := viaNode.Find("at")
		if !found {
			return fmt.Errorf("via: missing required 'at' position")
		}
		x, err := at.Float(1)
		if err != nil {
			return fmt.Errorf("via: failed to parse X position: %w", err)
		}
		y, err := at.Float(2)
		if err != nil {
			return fmt.Errorf("via: failed to parse Y position: %w", err)
		}
		via.Position = Position{X: x, Y: y}

		if sizeNode, found := viaNode.Find("size"); found {
			if via.Size, err = sizeNode.Float(1); err != nil {
				return fmt.Errorf("via at (%v, %v): failed to parse size: %w", x, y, err)
			}
		}
		if drillNode, found := viaNode.Find("drill"); found {
			if via.Drill, err = drillNode.Float(1); err != nil {
				return fmt.Errorf("via at (%v, %v): failed to parse drill: %w", x, y, err)
			}
		}
		if layersNode, found := viaNode.Find("layers"); found {
			for i := 1; i < layersNode.Len(); i++ {
				via.Layers = append(via.Layers, layersNode.Text(i))
			}
		}
		if netNode, found := viaNode.Find("net"); found {
			via.Net, _ = netNode.Int(1)
		}

		d.Vias = append(d.Vias, via)
	}

	return nil
}

// parseGraphics extracts board-level graphics. Unparseable graphics are
// skipped; they stay in the tree and survive a save either way.
func (d *Document) parseGraphics() {
	for _, node := range d.root.FindAll("gr_line") {
		g := Graphic{Kind: "line"}
		if !getXY(node, "start", &g.Start) || !getXY(node, "end", &g.End) {
			continue
		}
		g.Layer = childText(node, "layer")
		g.Width = strokeWidth(node)
		d.Graphics = append(d.Graphics, g)
	}

	for _, node := range d.root.FindAll("gr_rect") {
		g := Graphic{Kind: "rect"}
		if !getXY(node, "start", &g.Start) || !getXY(node, "end", &g.End) {
			continue
		}
		g.Layer = childText(node, "layer")
		g.Width = strokeWidth(node)
		d.Graphics = append(d.Graphics, g)
	}

	for _, node := range d.root.FindAll("gr_circle") {
		g := Graphic{Kind: "circle"}
		if !getXY(node, "center", &g.Center) || !getXY(node, "end", &g.End) {
			continue
		}
		g.Layer = childText(node, "layer")
		g.Width = strokeWidth(node)
		g.Filled = isFilled(node)
		d.Graphics = append(d.Graphics, g)
	}

	for _, node := range d.root.FindAll("gr_text") {
		g := Graphic{Kind: "text", Text: node.Text(1)}
		if !getXY(node, "at", &g.At) {
			continue
		}
		g.Layer = childText(node, "layer")
		g.TextSize = fontHeight(node)
		d.Graphics = append(d.Graphics, g)
	}
}

// fontHeight digs the text height out of (effects (font (size H W))).
func fontHeight(node *sexp.List) float64 {
	effects, found := node.Find("effects")
	if !found {
		return 0
	}
	font, found := effects.Find("font")
	if !found {
		return 0
	}
	size, found := font.Find("size")
	if !found {
		return 0
	}
	if h, err := size.Float(1); err == nil {
		return h
	}
	return 0
}

// getXY reads (key X Y) out of a parent node into pos.
func getXY(parent *sexp.List, key string, pos *Position) bool {
	node, found := parent.Find(key)
	if !found {
		return false
	}
	x, err := node.Float(1)
	if err != nil {
		return false
	}
	y, err := node.Float(2)
	if err != nil {
		return false
	}
	pos.X, pos.Y = x, y
	return true
}

// childText returns the first value of a named child, e.g. the layer
// name out of (layer "F.SilkS").
func childText(parent *sexp.List, key string) string {
	node, found := parent.Find(key)
	if !found {
		return ""
	}
	return node.Text(1)
}

// strokeWidth reads the stroke width from either the KiCad 7 nested
// (stroke (width W)) form or the older flat (width W).
func strokeWidth(node *sexp.List) float64 {
	if stroke, found := node.Find("stroke"); found {
		if w, found := stroke.Find("width"); found {
			if v, err := w.Float(1); err == nil {
				return v
			}
		}
	}
	if w, found := node.Find("width"); found {
		if v, err := w.Float(1); err == nil {
			return v
		}
	}
	return 0
}

// isFilled reports whether a shape carries a solid fill, accepting the
// (fill solid), (fill yes) and (fill (type solid)) variants.
func isFilled(node *sexp.List) bool {
	fill, found := node.Find("fill")
	if !found {
		return false
	}
	switch fill.Text(1) {
	case "solid", "yes":
		return true
	}
	if typ, found := fill.Find("type"); found {
		return typ.Text(1) == "solid"
	}
	return false
}

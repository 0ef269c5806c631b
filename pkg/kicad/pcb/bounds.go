package pcb

import "math"

// BoundingBox is a rectangle in board coordinates (mm).
type BoundingBox struct {
	Min Position
	Max Position
}

// NewBoundingBox returns an empty box ready for Expand calls.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: math.Inf(1), Y: math.Inf(1)},
		Max: Position{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether the box has never been expanded.
func (b *BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Expand grows the box to include pos.
func (b *BoundingBox) Expand(pos Position) {
	b.Min.X = math.Min(b.Min.X, pos.X)
	b.Min.Y = math.Min(b.Min.Y, pos.Y)
	b.Max.X = math.Max(b.Max.X, pos.X)
	b.Max.Y = math.Max(b.Max.Y, pos.Y)
}

// Width returns the box width in mm.
func (b *BoundingBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the box height in mm.
func (b *BoundingBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the box center.
func (b *BoundingBox) Center() Position {
	return Position{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// BoundingBox computes the extent of everything the document models:
// vias (with radius), footprint origins, and board graphics.
func (d *Document) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()

	for _, via := range d.Vias {
		r := via.Size / 2
		bbox.Expand(Position{X: via.Position.X - r, Y: via.Position.Y - r})
		bbox.Expand(Position{X: via.Position.X + r, Y: via.Position.Y + r})
	}

	for _, fp := range d.Footprints {
		bbox.Expand(fp.Position)
	}

	for _, g := range d.Graphics {
		switch g.Kind {
		case "line", "rect":
			bbox.Expand(g.Start)
			bbox.Expand(g.End)
		case "circle":
			r := g.Radius()
			bbox.Expand(Position{X: g.Center.X - r, Y: g.Center.Y - r})
			bbox.Expand(Position{X: g.Center.X + r, Y: g.Center.Y + r})
		case "text":
			bbox.Expand(g.At)
		}
	}

	return bbox
}

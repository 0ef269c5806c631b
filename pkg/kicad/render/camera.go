// Package render draws a board document into a Gio window: graphics,
// footprint markers, vias with drills, and silkscreen labels. It exists
// so a funnel placement can be eyeballed before the board goes back to
// the editor.
package render

import (
	"math"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
)

// Camera maps board coordinates (mm, Y down as in the board file) to
// screen pixels, with pan, zoom, flip, and quarter-turn rotation.
type Camera struct {
	// Center of the view in board coordinates (mm)
	CenterX float64
	CenterY float64

	// Zoom level in pixels per mm
	Zoom float64

	// Screen dimensions in pixels
	ScreenWidth  int
	ScreenHeight int

	// View state
	Flipped  bool    // Mirrored view (as if looking at the board back)
	Rotation float64 // Degrees, kept in 0..360

	// Board point the view rotates and flips around
	PivotX float64
	PivotY float64
}

// NewCamera creates a camera with a sane default zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         10.0, // 10 px/mm shows a typical funnel card whole
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// BoardToScreen converts a board position to screen pixels.
func (c *Camera) BoardToScreen(pos pcb.Position) (float64, float64) {
	pos = c.applyViewTransform(pos)

	x := (pos.X - c.CenterX) * c.Zoom
	y := (pos.Y - c.CenterY) * c.Zoom

	x += float64(c.ScreenWidth) / 2
	y += float64(c.ScreenHeight) / 2
	return x, y
}

// ScreenToBoard converts screen pixels back to a board position.
func (c *Camera) ScreenToBoard(screenX, screenY float64) pcb.Position {
	x := (screenX - float64(c.ScreenWidth)/2) / c.Zoom
	y := (screenY - float64(c.ScreenHeight)/2) / c.Zoom

	pos := pcb.Position{X: x + c.CenterX, Y: y + c.CenterY}
	return c.applyInverseViewTransform(pos)
}

// Pan moves the view by a screen-pixel delta.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms by factor, keeping the board point under the cursor
// stationary. Factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToBoard(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 1000 {
		c.Zoom = 1000
	}

	after := c.ScreenToBoard(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit centers and zooms so bbox fills 90% of the window.
func (c *Camera) Fit(bbox pcb.BoundingBox) {
	width := bbox.Width()
	height := bbox.Height()
	if width <= 0 || height <= 0 {
		return
	}

	center := bbox.Center()
	c.CenterX = center.X
	c.CenterY = center.Y
	c.PivotX = center.X
	c.PivotY = center.Y

	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	c.Zoom = math.Min(zoomX, zoomY)
}

// UpdateScreenSize tracks window resizes.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Flip toggles the mirrored view.
func (c *Camera) Flip() {
	c.Flipped = !c.Flipped
}

// Rotate turns the view by degrees.
func (c *Camera) Rotate(degrees float64) {
	c.Rotation += degrees
	for c.Rotation >= 360 {
		c.Rotation -= 360
	}
	for c.Rotation < 0 {
		c.Rotation += 360
	}
}

func (c *Camera) applyViewTransform(pos pcb.Position) pcb.Position {
	x := pos.X - c.PivotX
	y := pos.Y - c.PivotY

	if c.Rotation != 0 {
		rad := c.Rotation * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	if c.Flipped {
		x = -x
	}

	return pcb.Position{X: x + c.PivotX, Y: y + c.PivotY}
}

func (c *Camera) applyInverseViewTransform(pos pcb.Position) pcb.Position {
	x := pos.X - c.PivotX
	y := pos.Y - c.PivotY

	if c.Flipped {
		x = -x
	}

	if c.Rotation != 0 {
		rad := -c.Rotation * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return pcb.Position{X: x + c.PivotX, Y: y + c.PivotY}
}

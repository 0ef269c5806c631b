// Package preview renders a via grid placement as a lightweight
// Fyne canvas, sized to fit its container.
package preview

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/sriglab/sriggrid/pkg/layout"
)

var (
	colorBackground = color.NRGBA{R: 0, G: 16, B: 35, A: 255}
	colorPad        = color.NRGBA{R: 200, G: 170, B: 90, A: 255}
	colorDrill      = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// Grid shows placements as annular pads on a dark board background.
type Grid struct {
	placements []layout.Placement
	content    *fyne.Container
	size       fyne.Size
}

// NewGrid creates an empty preview.
func NewGrid() *Grid {
	g := &Grid{
		content: container.NewWithoutLayout(),
		size:    fyne.NewSize(480, 360),
	}
	return g
}

// Container returns the canvas object to embed in a window layout.
func (g *Grid) Container() fyne.CanvasObject {
	return g.content
}

// SetPlacements replaces the displayed placements and redraws.
func (g *Grid) SetPlacements(placements []layout.Placement) {
	g.placements = placements
	g.redraw()
}

// Resize updates the drawing area and redraws to the new scale.
func (g *Grid) Resize(size fyne.Size) {
	g.size = size
	g.redraw()
}

func (g *Grid) redraw() {
	g.content.RemoveAll()

	bg := fynecanvas.NewRectangle(colorBackground)
	bg.Resize(g.size)
	g.content.Add(bg)

	if len(g.placements) == 0 {
		g.content.Refresh()
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	maxOD := 0.0
	for _, p := range g.placements {
		minX = math.Min(minX, p.Pos.X)
		minY = math.Min(minY, p.Pos.Y)
		maxX = math.Max(maxX, p.Pos.X)
		maxY = math.Max(maxY, p.Pos.Y)
		maxOD = math.Max(maxOD, p.Record.OD)
	}
	minX -= maxOD
	minY -= maxOD
	maxX += maxOD
	maxY += maxOD

	// Uniform scale keeping the whole grid visible with a margin.
	const margin = 12
	scaleX := (float64(g.size.Width) - 2*margin) / (maxX - minX)
	scaleY := (float64(g.size.Height) - 2*margin) / (maxY - minY)
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsInf(scale, 0) {
		scale = 1
	}

	toScreen := func(x, y float64) fyne.Position {
		return fyne.NewPos(
			float32(margin+(x-minX)*scale),
			float32(margin+(y-minY)*scale),
		)
	}

	for _, p := range g.placements {
		padRadius := float32(p.Record.OD / 2 * scale)
		if padRadius < 2 {
			padRadius = 2
		}
		drillRadius := float32(p.Record.ID / 2 * scale)
		if drillRadius < 1 {
			drillRadius = 1
		}

		center := toScreen(p.Pos.X, p.Pos.Y)

		pad := fynecanvas.NewCircle(colorPad)
		pad.Resize(fyne.NewSize(padRadius*2, padRadius*2))
		pad.Move(fyne.NewPos(center.X-padRadius, center.Y-padRadius))
		g.content.Add(pad)

		drill := fynecanvas.NewCircle(colorDrill)
		drill.Resize(fyne.NewSize(drillRadius*2, drillRadius*2))
		drill.Move(fyne.NewPos(center.X-drillRadius, center.Y-drillRadius))
		g.content.Add(drill)
	}

	g.content.Refresh()
}

package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
)

// Painter draws board documents. It owns the text shaper, which is
// expensive to build, so create one Painter per window.
type Painter struct {
	shaper *text.Shaper
}

// NewPainter creates a painter with the bundled Go fonts.
func NewPainter() *Painter {
	return &Painter{
		shaper: text.NewShaper(text.WithCollection(gofont.Collection())),
	}
}

// Paint renders the document bottom-up: board graphics, footprint
// markers, vias, then text.
func (p *Painter) Paint(gtx layout.Context, camera *Camera, doc *pcb.Document) {
	p.paintGraphics(gtx, camera, doc)
	p.paintFootprints(gtx, camera, doc)
	p.paintVias(gtx, camera, doc)
	p.paintText(gtx, camera, doc)
}

func (p *Painter) paintGraphics(gtx layout.Context, camera *Camera, doc *pcb.Document) {
	for _, g := range doc.Graphics {
		col := LayerColor(g.Layer)

		switch g.Kind {
		case "line", "rect":
			x1, y1 := camera.BoardToScreen(g.Start)
			x2, y2 := camera.BoardToScreen(g.End)
			width := g.Width * camera.Zoom
			if width < 1 {
				width = 1
			}
			if g.Kind == "line" {
				paintLine(gtx, x1, y1, x2, y2, width, col)
			} else {
				paintLine(gtx, x1, y1, x2, y1, width, col)
				paintLine(gtx, x2, y1, x2, y2, width, col)
				paintLine(gtx, x2, y2, x1, y2, width, col)
				paintLine(gtx, x1, y2, x1, y1, width, col)
			}

		case "circle":
			x, y := camera.BoardToScreen(g.Center)
			radius := g.Radius() * camera.Zoom
			if radius < 1 {
				radius = 1
			}
			if g.Filled {
				paintCircle(gtx, x, y, radius, col)
			} else {
				paintRing(gtx, x, y, radius, g.Width*camera.Zoom, col)
			}
		}
	}
}

func (p *Painter) paintFootprints(gtx layout.Context, camera *Camera, doc *pcb.Document) {
	// Footprints draw as origin crosshairs; pad geometry is out of scope
	// for a placement preview.
	size := 1.5 * camera.Zoom
	if size < 4 {
		size = 4
	}
	for _, fp := range doc.Footprints {
		x, y := camera.BoardToScreen(fp.Position)
		paintLine(gtx, x-size, y, x+size, y, 1, ColorFootprint)
		paintLine(gtx, x, y-size, x, y+size, 1, ColorFootprint)
	}
}

func (p *Painter) paintVias(gtx layout.Context, camera *Camera, doc *pcb.Document) {
	for _, via := range doc.Vias {
		x, y := camera.BoardToScreen(via.Position)

		radius := via.Size / 2 * camera.Zoom
		if radius < 2 {
			radius = 2
		}
		paintCircle(gtx, x, y, radius, ColorVia)

		drillRadius := via.Drill / 2 * camera.Zoom
		if drillRadius < 1 {
			drillRadius = 1
		}
		if drillRadius < radius {
			paintCircle(gtx, x, y, drillRadius, ColorViaDrill)
		}
	}
}

func (p *Painter) paintText(gtx layout.Context, camera *Camera, doc *pcb.Document) {
	for _, g := range doc.Graphics {
		if g.Kind != "text" || g.Text == "" {
			continue
		}

		x, y := camera.BoardToScreen(g.At)

		height := g.TextSize
		if height <= 0 {
			height = 2.0
		}
		fontSize := height * camera.Zoom
		if fontSize < 8 {
			continue // unreadably small, skip
		}
		if fontSize > 60 {
			fontSize = 60
		}

		macro := op.Record(gtx.Ops)
		stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)

		paint.ColorOp{Color: LayerColor(g.Layer)}.Add(gtx.Ops)
		label := widget.Label{Alignment: text.Start, MaxLines: 1}
		label.Layout(gtx, p.shaper, font.Font{}, unit.Sp(fontSize), g.Text, op.CallOp{})

		stack.Pop()
		call := macro.Stop()
		call.Add(gtx.Ops)
	}
}

func paintCircle(gtx layout.Context, x, y, radius float64, col color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	rect := image.Rectangle{
		Min: image.Pt(int(-radius), int(-radius)),
		Max: image.Pt(int(radius), int(radius)),
	}
	paint.FillShape(gtx.Ops, col, clip.Ellipse(rect).Op(gtx.Ops))
}

func paintRing(gtx layout.Context, x, y, radius, width float64, col color.NRGBA) {
	if width < 1 {
		width = 1
	}

	var path clip.Path
	path.Begin(gtx.Ops)

	// Approximate the circle with line segments; fine for preview work.
	const segments = 48
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		px := float32(x + radius*math.Cos(angle))
		py := float32(y + radius*math.Sin(angle))
		if i == 0 {
			path.MoveTo(f32.Pt(px, py))
		} else {
			path.LineTo(f32.Pt(px, py))
		}
	}

	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: float32(width)}.Op())
}

func paintLine(gtx layout.Context, x1, y1, x2, y2, width float64, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: float32(width)}.Op())
}

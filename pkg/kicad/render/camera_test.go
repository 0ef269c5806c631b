package render

import (
	"math"
	"testing"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
)

func TestBoardToScreenRoundTrip(t *testing.T) {
	camera := NewCamera(800, 600)
	camera.CenterX = 50
	camera.CenterY = 40

	positions := []pcb.Position{
		{X: 50, Y: 40},
		{X: 0, Y: 0},
		{X: 123.456, Y: -7.89},
	}

	for _, pos := range positions {
		sx, sy := camera.BoardToScreen(pos)
		back := camera.ScreenToBoard(sx, sy)
		if math.Abs(back.X-pos.X) > 1e-9 || math.Abs(back.Y-pos.Y) > 1e-9 {
			t.Errorf("round trip of (%v, %v) gave (%v, %v)", pos.X, pos.Y, back.X, back.Y)
		}
	}
}

func TestCenterMapsToScreenCenter(t *testing.T) {
	camera := NewCamera(800, 600)
	camera.CenterX = 10
	camera.CenterY = 20

	sx, sy := camera.BoardToScreen(pcb.Position{X: 10, Y: 20})
	if sx != 400 || sy != 300 {
		t.Errorf("board center mapped to (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestFitCentersAndFills(t *testing.T) {
	camera := NewCamera(1000, 800)

	bbox := pcb.NewBoundingBox()
	bbox.Expand(pcb.Position{X: 0, Y: 0})
	bbox.Expand(pcb.Position{X: 100, Y: 50})
	camera.Fit(bbox)

	if camera.CenterX != 50 || camera.CenterY != 25 {
		t.Errorf("camera centered at (%v, %v), want (50, 25)", camera.CenterX, camera.CenterY)
	}

	// 90% of 1000 px over 100 mm
	if math.Abs(camera.Zoom-9) > 1e-9 {
		t.Errorf("zoom = %v, want 9", camera.Zoom)
	}
}

func TestPanTracksDrag(t *testing.T) {
	camera := NewCamera(800, 600)
	camera.CenterX = 10
	camera.CenterY = 20

	// A board point must follow a drag of (+80, +60) px on screen.
	beforeX, beforeY := camera.BoardToScreen(pcb.Position{X: 10, Y: 20})
	camera.Pan(80, 60)
	afterX, afterY := camera.BoardToScreen(pcb.Position{X: 10, Y: 20})

	if math.Abs(afterX-beforeX-80) > 1e-9 || math.Abs(afterY-beforeY-60) > 1e-9 {
		t.Errorf("after Pan(80, 60) point moved by (%v, %v), want (80, 60)",
			afterX-beforeX, afterY-beforeY)
	}
}

func TestZoomAtKeepsCursorPosition(t *testing.T) {
	camera := NewCamera(800, 600)
	camera.CenterX = 30
	camera.CenterY = 30

	before := camera.ScreenToBoard(200, 150)
	camera.ZoomAt(200, 150, 2)
	after := camera.ScreenToBoard(200, 150)

	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("point under cursor moved from (%v, %v) to (%v, %v)",
			before.X, before.Y, after.X, after.Y)
	}
}

func TestZoomClamped(t *testing.T) {
	camera := NewCamera(800, 600)
	camera.ZoomAt(400, 300, 1e9)
	if camera.Zoom > 1000 {
		t.Errorf("zoom %v exceeds max", camera.Zoom)
	}
	camera.ZoomAt(400, 300, 1e-12)
	if camera.Zoom < 0.1 {
		t.Errorf("zoom %v below min", camera.Zoom)
	}
}

func TestLayerColorFallback(t *testing.T) {
	if LayerColor("F.Cu") == LayerColor("no-such-layer") {
		t.Error("expected a distinct color for F.Cu")
	}
	// Unknown layers share the fallback.
	if LayerColor("no-such-layer") != LayerColor("also-missing") {
		t.Error("unknown layers should share the fallback color")
	}
}

package pcb

import (
	"strings"
	"testing"
)

func emptyBoard(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(`(kicad_pcb (version 20221018) (generator pcbnew) (net 0 ""))`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

// saveAndReload round-trips the document through the serializer.
func saveAndReload(t *testing.T, doc *Document) *Document {
	t.Helper()
	var sb strings.Builder
	if err := doc.Write(&sb); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	again, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("reparse after Write() failed: %v\noutput:\n%s", err, sb.String())
	}
	return again
}

func TestAddVia(t *testing.T) {
	doc := emptyBoard(t)

	err := doc.AddVia(ViaSpec{Position: Position{X: 1.88, Y: 0}, Drill: 1, Size: 2})
	if err != nil {
		t.Fatalf("AddVia() error: %v", err)
	}

	again := saveAndReload(t, doc)
	if len(again.Vias) != 1 {
		t.Fatalf("after reload len(Vias) = %d, want 1", len(again.Vias))
	}

	via := again.Vias[0]
	if via.Position.X != 1.88 || via.Position.Y != 0 {
		t.Errorf("Position = %+v, want (1.88, 0)", via.Position)
	}
	if via.Drill != 1 || via.Size != 2 {
		t.Errorf("Drill/Size = %v/%v, want 1/2", via.Drill, via.Size)
	}
	if len(via.Layers) != 2 || via.Layers[0] != LayerFCu || via.Layers[1] != LayerBCu {
		t.Errorf("Layers = %v, want [F.Cu B.Cu]", via.Layers)
	}
}

func TestAddViaValidation(t *testing.T) {
	doc := emptyBoard(t)

	if err := doc.AddVia(ViaSpec{Drill: 0, Size: 2}); err == nil {
		t.Error("zero drill: expected error")
	}
	if err := doc.AddVia(ViaSpec{Drill: 2, Size: 1}); err == nil {
		t.Error("size < drill: expected error")
	}
	if len(doc.Vias) != 0 {
		t.Errorf("rejected vias were added: %d", len(doc.Vias))
	}
}

func TestAddFilledCircle(t *testing.T) {
	doc := emptyBoard(t)

	err := doc.AddFilledCircle(LayerFMask, Position{X: 5, Y: 7}, 1.0)
	if err != nil {
		t.Fatalf("AddFilledCircle() error: %v", err)
	}

	again := saveAndReload(t, doc)
	if len(again.Graphics) != 1 {
		t.Fatalf("after reload len(Graphics) = %d, want 1", len(again.Graphics))
	}

	g := again.Graphics[0]
	if g.Kind != "circle" || g.Layer != LayerFMask {
		t.Errorf("graphic = %+v", g)
	}
	if !g.Filled {
		t.Error("circle not filled")
	}
	if r := g.Radius(); r != 1.0 {
		t.Errorf("Radius() = %v, want 1", r)
	}
}

func TestAddText(t *testing.T) {
	doc := emptyBoard(t)

	err := doc.AddText(LayerFSilk, Position{X: 0, Y: 5}, "12", 4, 0.5)
	if err != nil {
		t.Fatalf("AddText() error: %v", err)
	}
	if err := doc.AddText(LayerFSilk, Position{}, "", 4, 0.5); err == nil {
		t.Error("empty text: expected error")
	}

	again := saveAndReload(t, doc)
	if len(again.Graphics) != 1 {
		t.Fatalf("after reload len(Graphics) = %d, want 1", len(again.Graphics))
	}
	if got := again.Graphics[0].Text; got != "12" {
		t.Errorf("Text = %q, want 12", got)
	}
	if got := again.Graphics[0].TextSize; got != 4 {
		t.Errorf("TextSize = %v, want 4", got)
	}
}

func TestSetFootprintPosition(t *testing.T) {
	input := `(kicad_pcb (version 20221018)
	  (footprint "Ring:Electrode" (layer "F.Cu") (at 10 20 45)
	    (fp_text reference "A1" (at 0 0) (layer "F.SilkS"))
	  ))`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	fp, ok := doc.FootprintByReference("A1")
	if !ok {
		t.Fatal("footprint A1 not found")
	}
	if err := fp.SetPosition(Position{X: 31.88, Y: 20}); err != nil {
		t.Fatalf("SetPosition() error: %v", err)
	}

	again := saveAndReload(t, doc)
	moved, ok := again.FootprintByReference("A1")
	if !ok {
		t.Fatal("footprint A1 lost after save")
	}
	if moved.Position.X != 31.88 || moved.Position.Y != 20 {
		t.Errorf("Position = %+v, want (31.88, 20)", moved.Position)
	}
	if moved.Angle != 45 {
		t.Errorf("Angle = %v, want 45 (rotation must survive a move)", moved.Angle)
	}
}

// Sections the document model does not understand must survive a
// load/edit/save cycle.
func TestUnknownSectionsPreserved(t *testing.T) {
	input := `(kicad_pcb (version 20221018)
	  (setup (pad_to_mask_clearance 0.05))
	  (zone (net 1) (layer "F.Cu") (polygon (pts (xy 0 0) (xy 1 0) (xy 1 1)))))`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := doc.AddVia(ViaSpec{Position: Position{X: 1, Y: 1}, Drill: 0.5, Size: 1}); err != nil {
		t.Fatalf("AddVia() error: %v", err)
	}

	var sb strings.Builder
	if err := doc.Write(&sb); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := sb.String()

	for _, fragment := range []string{"pad_to_mask_clearance", "polygon", "zone"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("section %q missing from serialized board:\n%s", fragment, out)
		}
	}
}

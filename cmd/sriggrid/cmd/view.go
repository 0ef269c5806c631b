package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	giolayout "gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/kicad/render"
)

var viewCmd = &cobra.Command{
	Use:   "view <board_file>",
	Short: "View a board in the interactive viewer",
	Long: `Opens a board file in an interactive viewer with pan, zoom, and
rotation controls.

Controls:
  Left Click / R    - Rotate 90°
  Right Click / F   - Flip board
  Middle Drag       - Pan
  Scroll Wheel      - Zoom in/out
  Space             - Fit board to window
  Q / Escape        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	doc, err := pcb.Load(filename)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	fmt.Printf("Loaded %s\n", filename)
	fmt.Printf("  Version: %d\n", doc.Version)
	fmt.Printf("  Footprints: %d\n", len(doc.Footprints))
	fmt.Printf("  Vias: %d\n", len(doc.Vias))

	bbox := doc.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("  Board size: %.2f x %.2f mm\n", bbox.Width(), bbox.Height())
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("SRIG Grid Viewer - " + filename))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := runViewerWindow(w, doc, bbox); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runViewerWindow(w *app.Window, doc *pcb.Document, bbox pcb.BoundingBox) error {
	camera := render.NewCamera(1000, 800)
	if !bbox.IsEmpty() {
		camera.Fit(bbox)
	}
	painter := render.NewPainter()

	var ops op.Ops
	var panning bool
	var lastPan f32.Point

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := giolayout.Context{
				Ops:         &ops,
				Constraints: giolayout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					if handleKeyPress(ke.Name, camera, bbox) {
						return nil
					}
					w.Invalidate()
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
				})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					switch pe.Kind {
					case pointer.Press:
						if pe.Buttons == pointer.ButtonPrimary {
							camera.Rotate(90)
							w.Invalidate()
						} else if pe.Buttons == pointer.ButtonSecondary {
							camera.Flip()
							w.Invalidate()
						} else if pe.Buttons == pointer.ButtonTertiary {
							panning = true
							lastPan = pe.Position
						}
					case pointer.Drag:
						if panning {
							camera.Pan(float64(pe.Position.X-lastPan.X), float64(pe.Position.Y-lastPan.Y))
							lastPan = pe.Position
							w.Invalidate()
						}
					case pointer.Release, pointer.Cancel:
						panning = false
					case pointer.Scroll:
						zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
						camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
						w.Invalidate()
					}
				}
			}

			paint.Fill(&ops, render.ColorBackground)
			painter.Paint(gtx, camera, doc)

			e.Frame(&ops)
		}
	}
}

func handleKeyPress(k key.Name, camera *render.Camera, bbox pcb.BoundingBox) bool {
	switch k {
	case key.NameEscape, "Q":
		return true
	case "F":
		camera.Flip()
	case "R":
		camera.Rotate(90)
	case key.NameLeftArrow:
		camera.Rotate(-90)
	case key.NameSpace:
		if !bbox.IsEmpty() {
			camera.Fit(bbox)
		}
	}
	return false
}

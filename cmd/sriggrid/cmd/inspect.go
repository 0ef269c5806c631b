package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/layout"
)

var inspectVias bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <board_file>",
	Short: "Show board summary",
	Long: `Display a summary of a KiCad board file: header, layer and net
counts, footprints in natural reference order, and optionally every
via.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectVias, "vias", false, "list individual vias")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := pcb.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	fmt.Printf("Version:    %d\n", doc.Version)
	fmt.Printf("Generator:  %s\n", doc.Generator)
	fmt.Printf("Layers:     %d\n", len(doc.Layers))
	fmt.Printf("Nets:       %d\n", len(doc.Nets))
	fmt.Printf("Footprints: %d\n", len(doc.Footprints))
	fmt.Printf("Vias:       %d\n", len(doc.Vias))
	fmt.Printf("Graphics:   %d\n", len(doc.Graphics))

	bbox := doc.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("Size:       %.2f x %.2f mm\n", bbox.Width(), bbox.Height())
		center := bbox.Center()
		fmt.Printf("Center:     (%.2f, %.2f) mm\n", center.X, center.Y)
	}

	if len(doc.Footprints) > 0 {
		states := make([]layout.FootprintState, 0, len(doc.Footprints))
		for i, fp := range doc.Footprints {
			states = append(states, layout.FootprintState{
				Index:     i,
				Reference: fp.Reference,
				X:         fp.Position.X,
				Y:         fp.Position.Y,
			})
		}
		layout.SortByReference(states)

		fmt.Printf("\n%-12s %10s %10s\n", "Reference", "X (mm)", "Y (mm)")
		for _, fp := range states {
			fmt.Printf("%-12s %10.3f %10.3f\n", fp.Reference, fp.X, fp.Y)
		}
	}

	if inspectVias {
		fmt.Printf("\n%-6s %10s %10s %8s %8s\n", "Via", "X (mm)", "Y (mm)", "Size", "Drill")
		for i, via := range doc.Vias {
			fmt.Printf("%-6d %10.3f %10.3f %8.3f %8.3f\n",
				i+1, via.Position.X, via.Position.Y, via.Size, via.Drill)
		}
	}

	return nil
}

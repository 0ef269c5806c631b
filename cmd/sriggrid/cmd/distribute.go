package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/layout"
	"github.com/sriglab/sriggrid/pkg/units"
)

var (
	distRefs      []string
	distXStep     float64
	distYStep     float64
	distGridYStep float64
	distCols      int
	distUnits     string
	distOut       string
)

// Stock pitches: 360 mil between ring electrodes along X, 66 mil
// between stacked rows along Y.
const (
	defaultColStepMils = 360
	defaultRowStepMils = 66
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Re-space existing footprints",
	Long: `Moves footprints selected by reference pattern into uniform spacing.

Selection uses glob patterns over reference designators: --refs 'C*'
matches every capacitor, --refs R1 --refs R2 matches exactly those two.
Footprints move in board order for x and y, and in natural reference
order (A2 before A10) for xy.`,
}

var distributeXCmd = &cobra.Command{
	Use:   "x <board_file>",
	Short: "Space footprints uniformly along X",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDistribute(args[0], func(selected []layout.FootprintState, unit units.Unit) ([]layout.Move, error) {
			return layout.DistributeX(selected, unit.ToMM(distXStep))
		})
	},
}

var distributeYCmd = &cobra.Command{
	Use:   "y <board_file>",
	Short: "Space footprints uniformly along Y",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDistribute(args[0], func(selected []layout.FootprintState, unit units.Unit) ([]layout.Move, error) {
			return layout.DistributeY(selected, unit.ToMM(distYStep))
		})
	},
}

var distributeXYCmd = &cobra.Command{
	Use:   "xy <board_file>",
	Short: "Arrange footprints on a wrapping grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDistribute(args[0], func(selected []layout.FootprintState, unit units.Unit) ([]layout.Move, error) {
			return layout.DistributeGrid(selected, layout.GridConfig{
				XStep:   unit.ToMM(distXStep),
				YStep:   unit.ToMM(distGridYStep),
				Columns: distCols,
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(distributeCmd)
	distributeCmd.AddCommand(distributeXCmd)
	distributeCmd.AddCommand(distributeYCmd)
	distributeCmd.AddCommand(distributeXYCmd)

	colStep := units.MilToMM(defaultColStepMils)
	rowStep := units.MilToMM(defaultRowStepMils)
	distributeCmd.PersistentFlags().StringArrayVar(&distRefs, "refs", []string{"*"}, "reference glob patterns to select")
	distributeCmd.PersistentFlags().StringVar(&distUnits, "units", "mm", "step units (mm or inch)")
	distributeCmd.PersistentFlags().StringVarP(&distOut, "out", "o", "", "output board file (default: in place)")

	// The lone-axis commands default to their own stock pitch; the grid
	// uses the column pitch on both axes.
	distributeXCmd.Flags().Float64Var(&distXStep, "x-step", colStep, "X pitch")
	distributeYCmd.Flags().Float64Var(&distYStep, "y-step", rowStep, "Y pitch")
	distributeXYCmd.Flags().Float64Var(&distXStep, "x-step", colStep, "X pitch")
	distributeXYCmd.Flags().Float64Var(&distGridYStep, "y-step", colStep, "Y pitch")
	distributeXYCmd.Flags().IntVar(&distCols, "cols", 10, "columns before wrapping")
}

func runDistribute(boardPath string, compute func([]layout.FootprintState, units.Unit) ([]layout.Move, error)) error {
	unit, err := units.ParseUnit(distUnits)
	if err != nil {
		return err
	}

	doc, err := pcb.Load(boardPath)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	states := make([]layout.FootprintState, 0, len(doc.Footprints))
	for i, fp := range doc.Footprints {
		states = append(states, layout.FootprintState{
			Index:     i,
			Reference: fp.Reference,
			X:         fp.Position.X,
			Y:         fp.Position.Y,
		})
	}

	selected, err := layout.Select(states, distRefs)
	if err != nil {
		return err
	}
	logger.Debug("footprints selected", "count", len(selected), "patterns", distRefs)

	moves, err := compute(selected, unit)
	if err != nil {
		return err
	}

	// Moves are keyed by index, not reference: references duplicate on
	// boards with unannotated footprints.
	for _, move := range moves {
		if move.Index < 0 || move.Index >= len(doc.Footprints) {
			return fmt.Errorf("move targets footprint %d of %d", move.Index, len(doc.Footprints))
		}
		fp := &doc.Footprints[move.Index]
		if err := fp.SetPosition(pcb.Position{X: move.X, Y: move.Y}); err != nil {
			return fmt.Errorf("moving %s: %w", fp.Reference, err)
		}
	}

	outPath := distOut
	if outPath == "" {
		outPath = boardPath
	}
	if err := doc.Save(outPath); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	fmt.Printf("Moved %d footprints\n", len(moves))
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}

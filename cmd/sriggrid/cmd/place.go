package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/layout"
	"github.com/sriglab/sriggrid/pkg/units"
	"github.com/sriglab/sriggrid/pkg/viatable"
)

var (
	placeTable  string
	placeXStep  float64
	placeYStep  float64
	placeCols   int
	placeUnits  string
	placeNoMask bool
	placeOut    string
)

var placeCmd = &cobra.Command{
	Use:   "place <board_file>",
	Short: "Place a via grid from a via table",
	Long: `Reads a via table (CSV or JSON) and places its vias onto the board
in a wrapping grid: records fill columns left to right, then wrap to
the next row. Each via gets a numbered silkscreen label and solder
mask cutouts on both sides.

Steps are interpreted in the selected units (default mm).`,
	Args: cobra.ExactArgs(1),
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	defaults := layout.DefaultGridConfig()
	placeCmd.Flags().StringVarP(&placeTable, "table", "t", "", "via table file (.csv or .json)")
	placeCmd.Flags().Float64Var(&placeXStep, "x-step", defaults.XStep, "column pitch")
	placeCmd.Flags().Float64Var(&placeYStep, "y-step", defaults.YStep, "row pitch")
	placeCmd.Flags().IntVar(&placeCols, "cols", defaults.Columns, "columns before wrapping")
	placeCmd.Flags().StringVar(&placeUnits, "units", "mm", "step units (mm or inch)")
	placeCmd.Flags().BoolVar(&placeNoMask, "no-mask", false, "skip solder mask cutouts")
	placeCmd.Flags().StringVarP(&placeOut, "out", "o", "", "output board file (default: in place)")
	placeCmd.MarkFlagRequired("table")
}

func runPlace(cmd *cobra.Command, args []string) error {
	boardPath := args[0]

	unit, err := units.ParseUnit(placeUnits)
	if err != nil {
		return err
	}

	cfg := layout.GridConfig{
		XStep:   unit.ToMM(placeXStep),
		YStep:   unit.ToMM(placeYStep),
		Columns: placeCols,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	table, err := viatable.ReadFile(placeTable)
	if err != nil {
		return fmt.Errorf("reading via table: %w", err)
	}
	logger.Debug("via table loaded", "path", placeTable, "records", table.Len())

	doc, err := pcb.Load(boardPath)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}
	logger.Debug("board loaded", "path", boardPath, "version", doc.Version, "vias", len(doc.Vias))

	opts := layout.DefaultPlaceOptions()
	opts.Mask = !placeNoMask

	result, err := layout.Place(doc, table, cfg, opts)
	if err != nil {
		return fmt.Errorf("placing grid: %w", err)
	}

	outPath := placeOut
	if outPath == "" {
		outPath = boardPath
	}
	if err := doc.Save(outPath); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}

	fmt.Printf("Placed %d vias in a %dx%d grid\n", result.Placed, result.Rows, result.Cols)
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}

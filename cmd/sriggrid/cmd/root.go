package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sriggrid",
	Short: "SRIG Grid - via grid placement tools for ion funnel boards",
	Long: `SRIG Grid places electrode via grids on KiCad boards from CSV or
JSON via tables, re-spaces existing footprints, and converts table
formats.

Examples:
  sriggrid place board.kicad_pcb --table funnel.csv     # Place via grid
  sriggrid distribute xy board.kicad_pcb --refs 'C*'    # Re-space footprints
  sriggrid convert funnel.json -o funnel.csv            # JSON table to CSV
  sriggrid view board.kicad_pcb                         # Interactive viewer
  sriggrid ui                                           # Launch the GUI`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Fix Fyne locale parsing error when LANG=C
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

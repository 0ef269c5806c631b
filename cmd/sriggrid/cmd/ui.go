package cmd

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/internal/ui/mainwindow"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive GUI",
	Long: `Launch the GUI: open a board and a via table, preview the grid,
tune the spacing in a dialog, and place the vias.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := fyneapp.NewWithID("com.sriglab.sriggrid")
		win := mainwindow.New(a, logger)
		win.Show()
		a.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sriglab/sriggrid/pkg/viatable"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert <table.json>",
	Short: "Convert a JSON via table to CSV",
	Long: `Reads a JSON via table keyed by record index and writes the
equivalent CSV with the canonical index,X,Y,ID,OD columns, ordered by
index.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output CSV file (default: input with .csv extension)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	table, err := viatable.ReadJSON(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	outPath := convertOut
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".csv"
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := table.WriteCSV(out); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("Converted %d records to %s\n", table.Len(), outPath)
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/bom"
	"github.com/spf13/cobra"
)

var (
	bomXLSX       string
	bomOutput     string
	bomNoGroup    bool
	bomSkip       []string
	bomPlacements bool
)

var bomCmd = &cobra.Command{
	Use:   "bom <file.brd|file.sch>",
	Short: "Export a bill of materials",
	Long: `Export a bill of materials from a board or schematic.

CSV is written to stdout or --output. --xlsx writes a workbook instead;
for boards it also carries a CPL sheet with component placements.`,
	Args: cobra.ExactArgs(1),
	RunE: runBOM,
}

var cplCmd = &cobra.Command{
	Use:   "cpl <file.brd>",
	Short: "Export component placements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		b, err := requireBoard(args[0], doc)
		if err != nil {
			return err
		}
		placements := bom.Placements(b, bomOptions())
		return withOutput(bomOutput, func(w io.Writer) error {
			return bom.WritePlacementsCSV(w, placements)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{bomCmd, cplCmd} {
		c.Flags().StringVarP(&bomOutput, "output", "o", "", "output CSV file (default stdout)")
		c.Flags().StringSliceVar(&bomSkip, "skip", nil, "designator prefixes to leave out (e.g. TP,FID)")
	}
	bomCmd.Flags().StringVar(&bomXLSX, "xlsx", "", "write an Excel workbook to this path")
	bomCmd.Flags().BoolVar(&bomNoGroup, "no-group", false, "one row per part")
	bomCmd.Flags().BoolVar(&bomPlacements, "cpl", true, "add a CPL sheet to the workbook")
	rootCmd.AddCommand(bomCmd)
	rootCmd.AddCommand(cplCmd)
}

func bomOptions() bom.Options {
	opts := cfg.BOMOptions()
	if bomNoGroup {
		opts.GroupByValue = false
	}
	if len(bomSkip) > 0 {
		opts.SkipPrefixes = bomSkip
	}
	return opts
}

func runBOM(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	opts := bomOptions()
	var entries []bom.Entry
	var placements []bom.Placement
	switch {
	case doc.Drawing.Board != nil:
		entries = bom.FromBoard(doc.Drawing.Board, opts)
		if bomPlacements {
			placements = bom.Placements(doc.Drawing.Board, opts)
		}
	case doc.Drawing.Schematic != nil:
		entries = bom.FromSchematic(doc.Drawing.Schematic, opts)
	default:
		return fmt.Errorf("%s: not a board or schematic", args[0])
	}

	if bomXLSX != "" {
		if err := withOutput(bomXLSX, func(w io.Writer) error {
			return bom.WriteXLSX(w, entries, placements)
		}); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Wrote %d BOM lines to %s\n", len(entries), bomXLSX)
		}
		return nil
	}
	return withOutput(bomOutput, func(w io.Writer) error {
		return bom.WriteCSV(w, entries)
	})
}

// withOutput runs write against path, or stdout when path is empty
func withOutput(path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

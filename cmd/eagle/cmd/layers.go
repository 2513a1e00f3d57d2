package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/summary"
	"github.com/spf13/cobra"
)

var (
	layersDefaults bool
	layersUsed     bool
)

var layersCmd = &cobra.Command{
	Use:   "layers [file]",
	Short: "List the layer table",
	Long: `List the layer table of a document, or the default Eagle
layer table with --defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayers,
}

func init() {
	layersCmd.Flags().BoolVar(&layersDefaults, "defaults", false, "list the default layer table")
	layersCmd.Flags().BoolVar(&layersUsed, "used", false, "only layers referenced by primitives")
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) error {
	var layers []eagle.Layer
	used := map[int]bool{}

	switch {
	case layersDefaults:
		layers = eagle.DefaultLayers()
	case len(args) == 1:
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		layers = doc.Drawing.Layers
		if layersUsed {
			for _, n := range summary.Of(doc).UsedLayers {
				used[n] = true
			}
		}
	default:
		return fmt.Errorf("a file or --defaults is required")
	}

	fmt.Printf("%-4s %-16s %-5s %-4s %-7s %s\n", "Num", "Name", "Color", "Fill", "Visible", "RGB")
	for i := range layers {
		l := &layers[i]
		if layersUsed && !used[l.Number] {
			continue
		}
		c := l.RGB()
		fmt.Printf("%-4d %-16s %-5d %-4d %-7v #%02x%02x%02x\n", l.Number, l.Name, l.Color, l.Fill, l.Visible, c.R, c.G, c.B)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/summary"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show document summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	s := summary.Of(doc)

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Version:   %s", s.Version)
	if !s.Supported {
		fmt.Printf(" (unsupported)")
	}
	fmt.Println()
	fmt.Printf("Mode:      %s\n", s.Mode)
	fmt.Printf("Doctype:   %v\n", s.ValidDocType)
	fmt.Printf("Layers:    %d (%d used)\n", s.Layers, len(s.UsedLayers))
	if s.Warnings > 0 {
		fmt.Printf("Warnings:  %d\n", s.Warnings)
	}

	if l := s.Library; l != nil {
		fmt.Printf("\nLibrary %q:\n", l.Name)
		fmt.Printf("  Packages:    %d\n", l.Packages)
		fmt.Printf("  Symbols:     %d\n", l.Symbols)
		fmt.Printf("  Device sets: %d\n", l.DeviceSets)
	}
	if sc := s.Schematic; sc != nil {
		fmt.Printf("\nSchematic:\n")
		fmt.Printf("  Libraries: %d\n", sc.Libraries)
		fmt.Printf("  Parts:     %d\n", sc.Parts)
		fmt.Printf("  Sheets:    %d\n", sc.Sheets)
		fmt.Printf("  Instances: %d\n", sc.Instances)
		fmt.Printf("  Nets:      %d\n", sc.Nets)
	}
	if b := s.Board; b != nil {
		fmt.Printf("\nBoard:\n")
		fmt.Printf("  Size:      %.2f x %.2f mm\n", b.Width, b.Height)
		fmt.Printf("  Libraries: %d\n", b.Libraries)
		fmt.Printf("  Elements:  %d\n", b.Elements)
		fmt.Printf("  Signals:   %d\n", b.Signals)
		fmt.Printf("  Wires:     %d (%.2f mm routed)\n", b.Wires, b.RoutedLength)
		fmt.Printf("  Vias:      %d\n", b.Vias)
		fmt.Printf("  Polygons:  %d\n", b.Polygons)
		fmt.Printf("  Holes:     %d\n", b.Holes)
	}
	return nil
}

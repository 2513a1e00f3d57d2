package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/netlist"
	"github.com/spf13/cobra"
)

var (
	netlistFormat string
	netlistDiff   bool
)

var netlistCmd = &cobra.Command{
	Use:   "netlist <file> | --diff <schematic> <board>",
	Short: "Extract or compare netlists",
	Long: `Extract the netlist of a board or schematic.

Formats:
  text   - one net per line (default)
  json   - JSON document
  kicad  - KiCad netlist (S-expression)

With --diff, compare the connectivity of two documents and list the
nets that exist in only one of them.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNetlist,
}

func init() {
	netlistCmd.Flags().StringVarP(&netlistFormat, "format", "f", "text", "output format: text, json, kicad")
	netlistCmd.Flags().BoolVar(&netlistDiff, "diff", false, "compare two documents")
	rootCmd.AddCommand(netlistCmd)
}

func runNetlist(cmd *cobra.Command, args []string) error {
	if netlistDiff {
		if len(args) != 2 {
			return fmt.Errorf("--diff needs two files")
		}
		return runNetlistDiff(args[0], args[1])
	}
	if len(args) != 1 {
		return fmt.Errorf("expected one file")
	}

	nl, err := extractNetlist(args[0])
	if err != nil {
		return err
	}

	switch netlistFormat {
	case "text":
		for _, n := range nl.Nets {
			fmt.Printf("%s:", n.Name)
			for _, p := range n.Pins {
				fmt.Printf(" %s", p)
			}
			fmt.Println()
		}
		if verbose {
			fmt.Printf("%d nets, %d pins\n", nl.NetCount(), nl.PinCount())
		}
	case "json":
		data, err := nl.ToJSON()
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		fmt.Println()
	case "kicad":
		out, err := nl.ToKiCad(filepath.Base(args[0]))
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown format %q (use text, json or kicad)", netlistFormat)
	}
	return nil
}

func runNetlistDiff(a, b string) error {
	na, err := extractNetlist(a)
	if err != nil {
		return err
	}
	nb, err := extractNetlist(b)
	if err != nil {
		return err
	}

	diffs := netlist.Diff(na, nb)
	if len(diffs) == 0 {
		fmt.Println("Netlists match")
		return nil
	}
	for _, d := range diffs {
		file := a
		if d.Side == netlist.OnlyInB {
			file = b
		}
		fmt.Printf("only in %s: %s:", filepath.Base(file), d.Net)
		for _, p := range d.Pins {
			fmt.Printf(" %s", p)
		}
		fmt.Println()
	}
	return fmt.Errorf("%d differences", len(diffs))
}

func extractNetlist(path string) (*netlist.Netlist, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return netlistOf(path, doc)
}

func netlistOf(path string, doc *eagle.Document) (*netlist.Netlist, error) {
	switch {
	case doc.Drawing.Board != nil:
		return netlist.FromBoard(doc.Drawing.Board), nil
	case doc.Drawing.Schematic != nil:
		return netlist.FromSchematic(doc.Drawing.Schematic), nil
	}
	return nil, fmt.Errorf("%s: not a board or schematic", path)
}

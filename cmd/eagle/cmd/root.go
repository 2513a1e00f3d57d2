package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/OpenTraceLab/OpenTraceEagle/internal/config"
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "eagle",
	Short: "Eagle CAD library, schematic and board tools",
	Long: `eagle reads and writes Eagle XML files (.lbr, .sch, .brd) and
extracts data from them:
  - file summaries, debug dumps and layer tables
  - lossless re-serialization, scaling and default elision
  - bills of materials, placement lists and netlists
  - a searchable catalog of library packages, symbols and device sets

Examples:
  eagle info board.brd                      # Show board summary
  eagle convert in.brd out.brd --indent 1   # Rewrite a board
  eagle bom board.brd --xlsx bom.xlsx       # Export a BOM workbook
  eagle netlist --diff design.sch design.brd
  eagle catalog add ~/eagle/lbr/*.lbr       # Index libraries`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		if verbose && path != "" {
			log.Printf("config: %s", path)
		}
		return nil
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/eagle/config.yaml)")
}

// loadDocument reads an Eagle file with the configured options and
// reports parse problems under --verbose
func loadDocument(path string) (*eagle.Document, error) {
	doc := eagle.NewDocument()
	cfg.Apply(doc)
	if err := doc.Load(path); err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	if !doc.ValidXMLData {
		return nil, fmt.Errorf("%s: no Eagle drawing found", path)
	}

	if verbose {
		if !doc.ValidDocType {
			log.Printf("warning: %s: missing or unexpected doctype", path)
		}
		if !doc.IsSupported() {
			log.Printf("warning: %s: written by Eagle %s, newer than %s", path, doc.Version, eagle.EagleVersion)
		}
		for _, w := range doc.Warnings {
			log.Printf("warning: %s", w)
		}
	}
	return doc, nil
}

// requireBoard returns the board of a loaded document
func requireBoard(path string, doc *eagle.Document) (*eagle.Board, error) {
	if doc.Drawing.Board == nil {
		return nil, fmt.Errorf("%s: not a board", path)
	}
	return doc.Drawing.Board, nil
}

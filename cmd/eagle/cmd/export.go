package cmd

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/summary"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export document statistics as JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		s := summary.Of(doc)

		var write func(io.Writer, summary.Summary) error
		switch exportFormat {
		case "json":
			write = summary.WriteJSON
		case "yaml", "yml":
			write = summary.WriteYAML
		default:
			return fmt.Errorf("unknown format %q (use json or yaml)", exportFormat)
		}
		return withOutput(exportOutput, func(w io.Writer) error {
			return write(w, s)
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

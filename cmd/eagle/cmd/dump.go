package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the debug dump of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		doc.Dump(os.Stdout, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/catalog"
	"github.com/spf13/cobra"
)

var (
	catalogDir   string
	catalogLimit int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Index and search library parts",
	Long: `Maintain a local catalog of packages, symbols and device sets
taken from Eagle libraries, schematics, boards and archives of them.

Search queries use the bleve query string syntax, for example:
  eagle catalog search soic
  eagle catalog search "+kind:package +library:rcl"`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add Eagle files or archives to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		total := 0
		for _, path := range args {
			n, err := c.AddFile(path)
			if err != nil {
				return err
			}
			if verbose {
				log.Printf("%s: %d entries", path, n)
			}
			total += n
		}
		fmt.Printf("Added %d entries from %d files\n", total, len(args))
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		entries, err := c.Search(strings.Join(args, " "), catalogLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No matches")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%-9s %-20s %-16s %s\n", e.Kind, e.Name, e.Library, e.Description)
		}
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		n, err := c.Count()
		if err != nil {
			return err
		}
		fmt.Printf("Catalog: %s\n", c.Dir())
		fmt.Printf("Entries: %d\n", n)
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDir, "dir", "", "catalog directory (default from config)")
	catalogSearchCmd.Flags().IntVarP(&catalogLimit, "limit", "n", 10, "maximum number of results")
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func openCatalog() (*catalog.Catalog, error) {
	dir := catalogDir
	if dir == "" {
		dir = cfg.CatalogDir
	}
	return catalog.Open(dir)
}

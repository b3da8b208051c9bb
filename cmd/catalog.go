package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
)

func newCatalogCmd() *cobra.Command {
	var catalogFile string
	var sample int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Load a vendor catalog file and report what it contains",
		Long: `Loads a vendor catalog (.csv, .parquet or .sqlite), reports the number of
usable parts and prints a sample of the normalized spec keys. Useful for
checking a catalog export before pointing the server at it.`,
		Example: `  fastener-resolver catalog --path parts.csv
  fastener-resolver catalog --path parts.parquet --sample 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := catalogPath(catalogFile)
			catalog, err := mcmaster.Load(path)
			if err != nil {
				return err
			}

			fmt.Printf("catalog: %s\n", path)
			fmt.Printf("parts:   %d\n", catalog.Len())

			keys := catalog.Keys()
			sort.Strings(keys)
			if sample < len(keys) {
				keys = keys[:sample]
			}
			for _, key := range keys {
				match, _ := catalog.Lookup(key)
				fmt.Printf("  %s -> %s\n", key, match.PN)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFile, "path", "", "Vendor catalog file (.csv, .parquet or .sqlite)")
	cmd.Flags().IntVar(&sample, "sample", 10, "How many spec keys to print")

	return cmd
}

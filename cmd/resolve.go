package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabworks-cad/fastener-resolver/internal/assemble"
	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

func newResolveCmd() *cobra.Command {
	var catalogFile string

	cmd := &cobra.Command{
		Use:   "resolve [text]",
		Short: "Resolve one free-text fastener request from the command line",
		Example: `  fastener-resolver resolve "M6 socket screw 20mm that fits a matching nut"
  fastener-resolver resolve --catalog parts.csv "hex bolt m8x1.25, 30 mm"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, index, store, err := buildCore(catalogPath(catalogFile))
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			resolution := res.Resolve(text)
			items, lookupWarnings := mcmaster.ResolveItems(resolution.Items, store.Get())
			warnings := append(resolution.Warnings, lookupWarnings...)
			response := assemble.Build(resolution, items, warnings, index.AllSorted())

			fmt.Println(response.Message)
			for _, item := range items {
				if item.Status == models.StatusResolved {
					fmt.Printf("  %s %s -> McMaster %s (%s)\n", item.Part, item.Size, item.McMasterPN, item.VendorURL)
				} else {
					fmt.Printf("  %s %s -> needs sourcing\n", item.Part, item.Size)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Vendor catalog file (.csv, .parquet or .sqlite)")

	return cmd
}

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabworks-cad/fastener-resolver/internal/geometry"
	"github.com/fabworks-cad/fastener-resolver/internal/models"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

func newSizesCmd() *cobra.Command {
	var family string
	var standard string

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "List the thread sizes offered per family and standard",
		Example: `  fastener-resolver sizes
  fastener-resolver sizes --family HexNut
  fastener-resolver sizes --standard iso4762`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enum, err := geometry.NewTableEnumerator()
			if err != nil {
				return fmt.Errorf("failed to load size tables: %w", err)
			}
			index := sizes.Build(enum)

			matched := false
			for _, pair := range models.SupportedPairs {
				if family != "" && !strings.EqualFold(family, string(pair.Family)) {
					continue
				}
				if standard != "" && !strings.EqualFold(standard, string(pair.Standard)) {
					continue
				}
				matched = true

				set := index.AcceptableFor(pair)
				tokens := make([]string, 0, len(set))
				for token := range set {
					tokens = append(tokens, token)
				}
				sort.Strings(tokens)
				fmt.Printf("%s (%s): %s\n", pair.Family, pair.Standard, strings.Join(tokens, ", "))
			}
			if !matched {
				return fmt.Errorf("no supported pair matches family=%q standard=%q", family, standard)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "Only show sizes for this family")
	cmd.Flags().StringVar(&standard, "standard", "", "Only show sizes for this standard")

	return cmd
}

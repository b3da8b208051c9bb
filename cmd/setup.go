package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fabworks-cad/fastener-resolver/internal/geometry"
	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
	"github.com/fabworks-cad/fastener-resolver/internal/resolver"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

const defaultCatalogPath = "data/mcmaster_fasteners.csv"

// catalogPath resolves the vendor catalog location: flag, then the
// MCMASTER_CSV_PATH environment variable, then the repo default.
func catalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("MCMASTER_CSV_PATH"); env != "" {
		return env
	}
	return defaultCatalogPath
}

// buildCore wires the enumeration tables, the valid-size index, the resolver
// and the vendor catalog. Catalog problems other than a missing file are
// fatal here; a missing file degrades to an empty catalog inside Load.
func buildCore(catalogFile string) (*resolver.Resolver, *sizes.Index, *mcmaster.Store, error) {
	enum, err := geometry.NewTableEnumerator()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load size tables: %w", err)
	}

	index := sizes.Build(enum)

	catalog, err := mcmaster.Load(catalogFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load vendor catalog: %w", err)
	}
	slog.Info("vendor catalog loaded", "path", catalogFile, "parts", catalog.Len())

	return resolver.New(index), index, mcmaster.NewStore(catalog), nil
}

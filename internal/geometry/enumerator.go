// Package geometry is the boundary to the CAD engine. The resolver core
// never touches solids; it only consumes the engine's size enumeration and
// hands a finished GenerateSpec to the export side.
package geometry

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

// SizeEnumerator reports which size tokens exist for a (family, standard)
// pair. It is called once per pair during startup; failures degrade to an
// empty offering, never a crash.
type SizeEnumerator interface {
	Sizes(family models.Family, standard models.Standard) ([]string, error)
}

// Exporter is the downstream consumer of a finalized spec. It produces
// STEP/STL artifacts and drawings; implementations live outside this module.
type Exporter interface {
	Export(spec models.GenerateSpec) error
}

//go:embed sizes.yaml
var sizeTables []byte

type standardTable struct {
	Family models.Family `yaml:"family"`
	Sizes  []string      `yaml:"sizes"`
}

type tableFile struct {
	Standards map[models.Standard]standardTable `yaml:"standards"`
}

// TableEnumerator serves the embedded per-standard size tables. It stands in
// for the CAD engine's own enumeration and is the default provider.
type TableEnumerator struct {
	standards map[models.Standard]standardTable
}

// NewTableEnumerator parses the embedded tables.
func NewTableEnumerator() (*TableEnumerator, error) {
	var f tableFile
	if err := yaml.Unmarshal(sizeTables, &f); err != nil {
		return nil, fmt.Errorf("failed to parse size tables: %w", err)
	}
	if len(f.Standards) == 0 {
		return nil, fmt.Errorf("size tables are empty")
	}
	return &TableEnumerator{standards: f.Standards}, nil
}

// Sizes returns the offered tokens for the pair, or an error when the
// standard is unknown or belongs to a different family.
func (e *TableEnumerator) Sizes(family models.Family, standard models.Standard) ([]string, error) {
	table, ok := e.standards[standard]
	if !ok {
		return nil, fmt.Errorf("no size table for standard %s", standard)
	}
	if table.Family != family {
		return nil, fmt.Errorf("standard %s belongs to %s, not %s", standard, table.Family, family)
	}
	out := make([]string, len(table.Sizes))
	copy(out, table.Sizes)
	return out, nil
}

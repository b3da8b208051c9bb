// Package mcmaster resolves finished fastener specs against a McMaster-Carr
// part catalog. The catalog is loaded once from a CSV, Parquet or SQLite
// file and is immutable afterwards; lookups never fail, they just miss.
package mcmaster

import (
	"fmt"
	"log/slog"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

const vendorBaseURL = "https://www.mcmaster.com/"

// Match is one vendor catalog row.
type Match struct {
	SpecKey     string
	PN          string
	Description string
	PackQty     *int
}

// URL returns the canonical product page for the part number.
func (m Match) URL() string {
	return vendorBaseURL + m.PN + "/"
}

// Catalog is a case- and whitespace-insensitive mapping from spec key to
// vendor match. It is read-only after construction.
type Catalog struct {
	byKey map[string]Match
}

// NewCatalog builds a catalog from rows keyed however the source spelled
// them; keys are normalized on the way in.
func NewCatalog(rows []Match) *Catalog {
	byKey := make(map[string]Match, len(rows))
	for _, row := range rows {
		if row.PN == "" {
			slog.Warn("skipping catalog row without part number", "spec_key", row.SpecKey)
			continue
		}
		byKey[norm(row.SpecKey)] = row
	}
	return &Catalog{byKey: byKey}
}

// EmptyCatalog is what a missing catalog file degrades to.
func EmptyCatalog() *Catalog {
	return &Catalog{byKey: map[string]Match{}}
}

// Len reports the number of loaded parts.
func (c *Catalog) Len() int { return len(c.byKey) }

// Keys returns every normalized spec key, for inspection tooling.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.byKey))
	for k := range c.byKey {
		keys = append(keys, k)
	}
	return keys
}

// Lookup finds a vendor match for a spec key. Absence is not an error.
func (c *Catalog) Lookup(key string) (Match, bool) {
	m, ok := c.byKey[norm(key)]
	return m, ok
}

// ResolveItems runs the vendor lookup for every item, attaching vendor
// fields on a hit and marking needs_sourcing with one warning per miss.
func ResolveItems(items []models.ParsedItem, catalog *Catalog) ([]models.ResolvedItem, []string) {
	resolved := make([]models.ResolvedItem, 0, len(items))
	var warnings []string
	for _, item := range items {
		out := models.ResolvedItem{ParsedItem: item, Status: models.StatusNeedsSourcing}
		if m, ok := catalog.Lookup(BuildSpecKey(item)); ok {
			out.Status = models.StatusResolved
			out.McMasterPN = m.PN
			out.VendorDescription = m.Description
			out.VendorURL = m.URL()
			out.PackQty = m.PackQty
		} else {
			warnings = append(warnings, missWarning(item))
		}
		resolved = append(resolved, out)
	}
	return resolved, warnings
}

func missWarning(item models.ParsedItem) string {
	if item.Part == models.PartScrew && item.LengthMm != nil {
		return fmt.Sprintf("no vendor part found for %s %s (%s) %s x %g mm; needs sourcing",
			item.Part, item.Family, item.Standard, item.Size, *item.LengthMm)
	}
	return fmt.Sprintf("no vendor part found for %s %s (%s) %s; needs sourcing",
		item.Part, item.Family, item.Standard, item.Size)
}

// Package sizes holds the process-wide index of size tokens that actually
// exist per (family, standard) pair. The index is built once at startup and
// is read-only afterwards, so concurrent resolutions share it without locks.
package sizes

import (
	"log/slog"
	"sort"

	"github.com/fabworks-cad/fastener-resolver/internal/geometry"
	"github.com/fabworks-cad/fastener-resolver/internal/lexer"
	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

const (
	// DefaultSize is the last-resort token when nothing in the text or the
	// index produces a usable size.
	DefaultSize = "M6-1"

	// DefaultLengthMm is assumed for screws when no length is given.
	DefaultLengthMm = 20.0

	// defaultMajor is the thread major the fallback search pivots on.
	defaultMajor = 6.0
)

// Set is a membership set of canonical size tokens.
type Set map[string]struct{}

// Index maps each supported pair to its offered sizes, plus the union of
// everything offered anywhere as the last-resort acceptable space.
type Index struct {
	perPair map[models.FamilyStandard]Set
	union   Set
}

// Build queries the enumerator once per supported pair. A failed or empty
// enumeration leaves that pair with an empty set; if every pair comes back
// empty the union degrades to the single default token.
func Build(enum geometry.SizeEnumerator) *Index {
	idx := &Index{
		perPair: make(map[models.FamilyStandard]Set, len(models.SupportedPairs)),
		union:   make(Set),
	}
	for _, pair := range models.SupportedPairs {
		set := make(Set)
		tokens, err := enum.Sizes(pair.Family, pair.Standard)
		if err != nil {
			slog.Warn("size enumeration failed", "family", pair.Family, "standard", pair.Standard, "err", err)
		}
		for _, token := range tokens {
			set[token] = struct{}{}
			idx.union[token] = struct{}{}
		}
		idx.perPair[pair] = set
	}
	if len(idx.union) == 0 {
		slog.Warn("no sizes enumerated for any pair, falling back to default", "default", DefaultSize)
		idx.union[DefaultSize] = struct{}{}
	}
	return idx
}

// AcceptableFor returns the offered set for the pair, or the global union
// when the pair has no entries of its own.
func (idx *Index) AcceptableFor(pair models.FamilyStandard) Set {
	if set, ok := idx.perPair[pair]; ok && len(set) > 0 {
		return set
	}
	return idx.union
}

// Fallback picks a stand-in token from the acceptable set: the default token
// when offered, otherwise the lowest-pitch M6 variant, otherwise the literal
// default even though nothing validates it. The chain never fails.
func Fallback(acceptable Set) string {
	if _, ok := acceptable[DefaultSize]; ok {
		return DefaultSize
	}
	if token, ok := lexer.LowestPitchFor(defaultMajor, acceptable); ok {
		return token
	}
	return DefaultSize
}

// AllSorted returns every globally valid token in ascending string order.
func (idx *Index) AllSorted() []string {
	out := make([]string, 0, len(idx.union))
	for token := range idx.union {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

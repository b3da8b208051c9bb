// Package resolver turns free-form fastener requests into complete,
// catalog-valid part specifications. Every substitution it makes is recorded
// as a human-readable warning; malformed input never produces an error, only
// a defaulted spec with an audit trail.
package resolver

import (
	"fmt"
	"strings"

	"github.com/fabworks-cad/fastener-resolver/internal/classify"
	"github.com/fabworks-cad/fastener-resolver/internal/lexer"
	"github.com/fabworks-cad/fastener-resolver/internal/models"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

var nutPair = models.FamilyStandard{Family: models.HexNut, Standard: models.ISO4032}

// Resolution is the outcome of one request: the parsed items in resolution
// order plus every warning emitted on the way, in the same order.
type Resolution struct {
	Items    []models.ParsedItem
	Warnings []string

	WantsScrew    bool
	WantsNut      bool
	WantsMatching bool
}

// Resolver composes the classifier, the lexer and the valid-size index.
// It is stateless apart from the read-only index and safe for concurrent use.
type Resolver struct {
	index *sizes.Index
}

func New(index *sizes.Index) *Resolver {
	return &Resolver{index: index}
}

// Resolve parses the request text into one or more items. When the text
// names neither a screw nor a nut, a single screw is guessed so the caller
// always receives at least one item.
func (r *Resolver) Resolve(text string) Resolution {
	text = strings.ToLower(strings.TrimSpace(text))

	res := Resolution{
		WantsScrew:    strings.Contains(text, "screw") || strings.Contains(text, "bolt"),
		WantsNut:      strings.Contains(text, "nut"),
		WantsMatching: containsAny(text, "that will fit", "that fits", "fit", "matching"),
	}

	pair := classify.Classify(text)

	if res.WantsScrew {
		res.Items = append(res.Items, r.resolveScrew(text, pair, &res.Warnings))
	}
	if res.WantsNut {
		res.Items = append(res.Items, r.resolveNut(text, &res.Warnings))
	}
	if len(res.Items) == 0 {
		// No explicit part keyword: guess a screw.
		res.Items = append(res.Items, r.resolveScrew(text, pair, &res.Warnings))
	}
	return res
}

func (r *Resolver) resolveScrew(text string, pair models.FamilyStandard, warnings *[]string) models.ParsedItem {
	size := r.resolveSize(text, pair, warnings)
	length, ok := lexer.ExtractLengthMm(text)
	if !ok {
		length = sizes.DefaultLengthMm
	}
	return models.ParsedItem{
		Part:     models.PartScrew,
		Family:   pair.Family,
		Standard: pair.Standard,
		Size:     size,
		LengthMm: models.Float64Ptr(length),
	}
}

func (r *Resolver) resolveNut(text string, warnings *[]string) models.ParsedItem {
	return models.ParsedItem{
		Part:     models.PartNut,
		Family:   nutPair.Family,
		Standard: nutPair.Standard,
		Size:     r.resolveSize(text, nutPair, warnings),
	}
}

// resolveSize extracts a size valid for the pair, or falls back with a
// warning explaining the substitution.
func (r *Resolver) resolveSize(text string, pair models.FamilyStandard, warnings *[]string) string {
	acceptable := r.index.AcceptableFor(pair)

	if token, ok := lexer.ExtractMetricSize(text, acceptable); ok {
		return token
	}

	fallback := sizes.Fallback(acceptable)
	if rejected, ok := lexer.DetectExplicitSize(text); ok {
		*warnings = append(*warnings, fmt.Sprintf(
			"thread size %s is not available for %s (%s); using %s instead",
			rejected, pair.Family, pair.Standard, fallback))
	} else {
		*warnings = append(*warnings, fmt.Sprintf(
			"no valid metric thread size detected for %s (%s); using %s instead",
			pair.Family, pair.Standard, fallback))
	}
	return fallback
}

func containsAny(text string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// Package assemble renders a resolution into the response contract shared
// with the frontend: a human-readable message plus the structured item list.
package assemble

import (
	"fmt"
	"strings"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
	"github.com/fabworks-cad/fastener-resolver/internal/resolver"
)

// Response is the full payload for one resolution request.
type Response struct {
	Message    string                `json:"message"`
	Items      []models.ResolvedItem `json:"items"`
	Warnings   []string              `json:"warnings"`
	ValidSizes []string              `json:"valid_sizes"`
}

// Build renders the message for the resolved items, appending a matching
// note when a nut travels with a screw and a Notes block for every warning.
func Build(res resolver.Resolution, items []models.ResolvedItem, warnings []string, validSizes []string) Response {
	lines := []string{"Here's what I understood:"}
	var sawScrew, sawNut bool
	for _, item := range items {
		switch item.Part {
		case models.PartScrew:
			sawScrew = true
			var length float64
			if item.LengthMm != nil {
				length = *item.LengthMm
			}
			lines = append(lines, fmt.Sprintf("- Screw: %s (%s), %s, length %d mm",
				item.Family, item.Standard, item.Size, int(length)))
		case models.PartNut:
			sawNut = true
			lines = append(lines, fmt.Sprintf("- Nut: %s (%s), %s",
				item.Family, item.Standard, item.Size))
		}
	}

	if sawNut && (sawScrew || res.WantsMatching) {
		lines = append(lines, "These will match by thread size/pitch.")
	}

	if len(warnings) > 0 {
		lines = append(lines, "Notes:")
		for _, w := range warnings {
			lines = append(lines, "- "+w)
		}
	}

	return Response{
		Message:    strings.Join(lines, "\n"),
		Items:      items,
		Warnings:   warnings,
		ValidSizes: validSizes,
	}
}

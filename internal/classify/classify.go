// Package classify maps free-text cues to a screw (family, standard) pair.
package classify

import (
	"regexp"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

type rule struct {
	pattern  *regexp.Regexp
	family   models.Family
	standard models.Standard
}

// Rules are evaluated in order; the first match wins. Word boundaries keep
// cues like "pan" from matching inside longer words ("panther").
var rules = []rule{
	{regexp.MustCompile(`(?i)\bsocket head\b|\bsocket\b|\bshcs\b`), models.SocketHeadCapScrew, models.ISO4762},
	{regexp.MustCompile(`(?i)\bhex head\b|\bhex\b|\bbolt\b`), models.HexHeadScrew, models.ISO4017},
	{regexp.MustCompile(`(?i)\bcountersunk\b|\bflat head\b`), models.CounterSunkScrew, models.ISO10642},
	{regexp.MustCompile(`(?i)\bpan head\b|\bpan\b`), models.PanHeadScrew, models.ISO1580},
}

// DefaultPair is returned when no cue matches.
var DefaultPair = models.FamilyStandard{Family: models.SocketHeadCapScrew, Standard: models.ISO4762}

// Classify returns the screw family and standard implied by the text. It is
// total: text with no recognizable cue classifies as the default pair.
func Classify(text string) models.FamilyStandard {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return models.FamilyStandard{Family: r.family, Standard: r.standard}
		}
	}
	return DefaultPair
}

package mcmaster

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

// familyToKind maps a family to the short purchasing code used in spec keys.
var familyToKind = map[models.Family]string{
	models.SocketHeadCapScrew: "shcs",
	models.HexHeadScrew:       "hex",
	models.CounterSunkScrew:   "csk",
	models.PanHeadScrew:       "pan",
	models.HexNut:             "hexnut",
}

// standardAlias maps standards treated as equivalent for purchasing. Today
// every standard maps to itself; the table exists so aliases stay a data
// change rather than a code change.
var standardAlias = map[models.Standard]string{
	models.ISO4762:  "iso4762",
	models.ISO4017:  "iso4017",
	models.ISO10642: "iso10642",
	models.ISO1580:  "iso1580",
	models.ISO4032:  "iso4032",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sizeXFormRe  = regexp.MustCompile(`^m(\d+(?:\.\d+)?)x(\d+(?:\.\d+)?)$`)
)

func norm(s string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// normSize converts any spelling of a size ("M6x1", "m6 - 1", "M6×1") to the
// canonical upper-cased M6-1 form so all spellings key identically.
func normSize(size string) string {
	t := norm(size)
	t = strings.ReplaceAll(t, "×", "x")
	t = sizeXFormRe.ReplaceAllString(t, "m$1-$2")
	return strings.ToUpper(t)
}

// BuildSpecKey renders the deterministic lookup key for an item:
// part|kind|standard|SIZE plus an L<mm> segment for screws, with the length
// rounded to the nearest integer millimeter.
func BuildSpecKey(item models.ParsedItem) string {
	kind, ok := familyToKind[item.Family]
	if !ok {
		kind = norm(string(item.Family))
	}
	std, ok := standardAlias[item.Standard]
	if !ok {
		std = norm(string(item.Standard))
	}
	part := norm(string(item.Part))
	size := normSize(item.Size)

	if item.Part == models.PartScrew {
		var l int
		if item.LengthMm != nil {
			l = int(math.Round(*item.LengthMm))
		}
		return fmt.Sprintf("%s|%s|%s|%s|L%d", part, kind, std, size, l)
	}
	return fmt.Sprintf("%s|%s|%s|%s", part, kind, std, size)
}

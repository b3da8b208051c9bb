package sizes

import (
	"fmt"
	"testing"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
)

// fakeEnumerator serves canned size lists per standard and fails everywhere else.
type fakeEnumerator struct {
	byStandard map[models.Standard][]string
}

func (f *fakeEnumerator) Sizes(family models.Family, standard models.Standard) ([]string, error) {
	tokens, ok := f.byStandard[standard]
	if !ok {
		return nil, fmt.Errorf("no sizes for %s", standard)
	}
	return tokens, nil
}

func TestBuildIndex(t *testing.T) {
	enum := &fakeEnumerator{byStandard: map[models.Standard][]string{
		models.ISO4762: {"M6-1", "M8-1.25"},
		models.ISO4032: {"M6-1", "M10-1.5"},
	}}
	idx := Build(enum)

	shcs := models.FamilyStandard{Family: models.SocketHeadCapScrew, Standard: models.ISO4762}
	acceptable := idx.AcceptableFor(shcs)
	if _, ok := acceptable["M6-1"]; !ok {
		t.Error("Expected M6-1 to be acceptable for SHCS")
	}
	if _, ok := acceptable["M10-1.5"]; ok {
		t.Error("M10-1.5 belongs to the nut standard, not SHCS")
	}

	// A pair whose enumeration failed falls back to the union of everything.
	pan := models.FamilyStandard{Family: models.PanHeadScrew, Standard: models.ISO1580}
	union := idx.AcceptableFor(pan)
	for _, token := range []string{"M6-1", "M8-1.25", "M10-1.5"} {
		if _, ok := union[token]; !ok {
			t.Errorf("Expected union to contain %s", token)
		}
	}
}

func TestBuildIndexAllEmpty(t *testing.T) {
	idx := Build(&fakeEnumerator{byStandard: nil})

	sorted := idx.AllSorted()
	if len(sorted) != 1 || sorted[0] != DefaultSize {
		t.Errorf("Expected the union to degrade to [%s], got %v", DefaultSize, sorted)
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name       string
		acceptable Set
		expected   string
	}{
		{"default offered", Set{"M6-1": {}, "M8-1.25": {}}, "M6-1"},
		{"lowest M6 pitch", Set{"M6-1.25": {}, "M6-0.75": {}}, "M6-0.75"},
		{"no M6 variant at all", Set{"M8-1.25": {}}, DefaultSize},
		{"empty set", Set{}, DefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(tt.acceptable)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestAllSortedAscending(t *testing.T) {
	enum := &fakeEnumerator{byStandard: map[models.Standard][]string{
		models.ISO4762: {"M8-1.25", "M2.5-0.45", "M6-1"},
	}}
	idx := Build(enum)

	sorted := idx.AllSorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] >= sorted[i] {
			t.Errorf("Expected ascending order, got %v", sorted)
		}
	}
}

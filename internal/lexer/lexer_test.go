package lexer

import (
	"strings"
	"testing"
)

func set(tokens ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func TestCanonicalSize(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		pitch    string
		expected string
	}{
		{"integer major and pitch", "6", "1", "M6-1"},
		{"trailing .0 stripped", "6", "1.0", "M6-1"},
		{"decimal pitch kept", "6", "1.25", "M6-1.25"},
		{"decimal major kept", "2.5", "0.45", "M2.5-0.45"},
		{"trailing zeros stripped", "8", "1.250", "M8-1.25"},
		{"all-zero fraction stripped", "20", "2.00", "M20-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanonicalSize(tt.major, tt.pitch)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestDetectExplicitSizeIdempotent(t *testing.T) {
	// Re-canonicalizing an already-canonical token must not change it.
	for _, token := range []string{"M6-1", "M2.5-0.45", "M8-1.25", "M16-2"} {
		got, ok := DetectExplicitSize(strings.ToLower("need " + token + " please"))
		if !ok {
			t.Fatalf("Expected to detect %s", token)
		}
		if got != token {
			t.Errorf("Expected %s, got %s", token, got)
		}
	}
}

func TestExtractMetricSize(t *testing.T) {
	acceptable := set("M6-1", "M6-0.75", "M8-1.25", "M2.5-0.45")

	tests := []struct {
		name       string
		text       string
		acceptable map[string]struct{}
		expected   string
		found      bool
	}{
		{"explicit x separator", "m6x1 socket screw", acceptable, "M6-1", true},
		{"explicit dash separator", "m6-1 screw", acceptable, "M6-1", true},
		{"explicit spaced separator", "m6 x 1, 20mm", acceptable, "M6-1", true},
		{"whitespace separator", "m8 1.25 bolt", acceptable, "M8-1.25", true},
		{"explicit but not offered", "m6x2 screw", acceptable, "", false},
		{"major only picks lowest pitch", "an m6 screw", acceptable, "M6-0.75", true},
		{"decimal major only", "m2.5 screw", acceptable, "M2.5-0.45", true},
		{"major with no acceptable variant", "m12 screw", acceptable, "", false},
		{"no size at all", "a nice screw", acceptable, "", false},
		{"empty acceptable set, explicit", "m6x1 screw", set(), "", false},
		{"empty acceptable set, major only", "m6 screw", set(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ExtractMetricSize(tt.text, tt.acceptable)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v (result %q)", tt.found, ok, result)
			}
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestExtractLengthMm(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		found    bool
	}{
		{"bare mm", "20mm socket screw", 20, true},
		{"spaced mm", "a 35 mm bolt", 35, true},
		{"spelled out", "12 millimeters long", 12, true},
		{"singular spelled out", "1 millimeter long", 1, true},
		{"length keyword fallback", "screw length 16", 16, true},
		{"decimal length", "17.5 mm", 17.5, true},
		{"no length", "an m6 screw", 0, false},
		{"inches ignored", "a 2 inch screw", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ExtractLengthMm(tt.text)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestLowestPitchFor(t *testing.T) {
	acceptable := set("M6-1", "M6-0.75", "M6-0.5", "M8-1.25")

	token, ok := LowestPitchFor(6, acceptable)
	if !ok {
		t.Fatal("Expected a token for major 6")
	}
	if token != "M6-0.5" {
		t.Errorf("Expected M6-0.5, got %s", token)
	}

	if _, ok := LowestPitchFor(10, acceptable); ok {
		t.Error("Expected no token for major 10")
	}
}

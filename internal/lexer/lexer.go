// Package lexer extracts metric thread sizes and lengths from free text.
// All functions are pure; callers pass normalized (trimmed, lower-cased)
// text and are responsible for surfacing any rejected tokens as warnings.
package lexer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// Full "major x pitch" form: M6x1, M6 x 1, M6-1, m6 1.0.
	sizeWithPitchRe = regexp.MustCompile(`\bm(\d+(?:\.\d+)?)\s*(?:[x×-]|\s)?\s*(\d+(?:\.\d+)?)\b`)

	// Major only: M6, m2.5.
	sizeMajorOnlyRe = regexp.MustCompile(`\bm(\d+(?:\.\d+)?)\b`)

	lengthMmRe      = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:mm|millimeter|millimeters)\b`)
	lengthKeywordRe = regexp.MustCompile(`\blength\s*(\d+(?:\.\d+)?)\b`)

	canonicalTokenRe = regexp.MustCompile(`^M(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)$`)
)

// canonicalNumber renders a decimal string without a superfluous fractional
// part: "1.0" -> "1", "1.25" -> "1.25", "0.50" -> "0.5".
func canonicalNumber(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// CanonicalSize renders a major/pitch pair in the canonical M<major>-<pitch>
// notation used throughout the catalog.
func CanonicalSize(major, pitch string) string {
	return "M" + canonicalNumber(major) + "-" + canonicalNumber(pitch)
}

// SplitSize parses a canonical size token back into numeric major and pitch.
func SplitSize(token string) (major, pitch float64, ok bool) {
	m := canonicalTokenRe.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	major, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	pitch, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return major, pitch, true
}

// DetectExplicitSize returns the canonicalized "major x pitch" token found in
// the text, whether or not any catalog offers it.
func DetectExplicitSize(text string) (string, bool) {
	m := sizeWithPitchRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return CanonicalSize(m[1], m[2]), true
}

// ExtractMetricSize returns the first thread size in the text that is a
// member of acceptable. An explicit but unacceptable "major x pitch" token
// yields no result here; a bare major is resolved to the lowest-pitch
// acceptable token with that major.
func ExtractMetricSize(text string, acceptable map[string]struct{}) (string, bool) {
	if token, ok := DetectExplicitSize(text); ok {
		if _, valid := acceptable[token]; valid {
			return token, true
		}
		return "", false
	}

	m := sizeMajorOnlyRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	major, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	return LowestPitchFor(major, acceptable)
}

// LowestPitchFor returns the acceptable token with the given major and the
// numerically smallest pitch.
func LowestPitchFor(major float64, acceptable map[string]struct{}) (string, bool) {
	type candidate struct {
		token string
		pitch float64
	}
	var candidates []candidate
	for token := range acceptable {
		maj, pitch, ok := SplitSize(token)
		if !ok || maj != major {
			continue
		}
		candidates = append(candidates, candidate{token, pitch})
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].pitch != candidates[j].pitch {
			return candidates[i].pitch < candidates[j].pitch
		}
		return candidates[i].token < candidates[j].token
	})
	return candidates[0].token, true
}

// ExtractLengthMm returns an explicit millimeter quantity from the text,
// falling back to a "length <n>" phrase. Only millimeters are recognized;
// no unit conversion is performed.
func ExtractLengthMm(text string) (float64, bool) {
	if m := lengthMmRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v, true
		}
	}
	if m := lengthKeywordRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}

package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes a free-text name for matching across providers:
// diacritics stripped, lowercased, every non-alphanumeric run collapsed to a
// single space, trimmed.
//
// "São Paulo" and "sao-paulo" normalize to the same value; providers disagree
// on accents and punctuation far more often than on the letters themselves.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	decomposed := norm.NFD.String(name)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark left over from decomposition
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// TeamPairKey builds the normalized "home|away" key used to match fixtures
// against the secondary probability bundle.
func TeamPairKey(homeTeam, awayTeam string) string {
	return NormalizeName(homeTeam) + "|" + NormalizeName(awayTeam)
}

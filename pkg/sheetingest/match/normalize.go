// Package match implements resilient name matching for externally authored
// workbooks. Sheet and column names arrive with arbitrary casing, stray
// whitespace and diacritics; every comparison in this package happens on a
// normalized key while the original name is what gets stored and displayed.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes text canonically and drops every rune that has no
// ASCII representation. Combining marks decompose above U+007F, so accents
// disappear with the rest of the non-Latin remainder.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

func foldASCII(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		return text
	}
	return folded
}

// Key canonicalizes text for prefix comparison: canonical decomposition,
// non-ASCII runes dropped, lowercased, whitespace and underscores removed.
// Underscores count as authored separators so "id_column" and "ID Column"
// compare equal. Empty input yields the empty string, never an error.
// Key is idempotent.
func Key(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(foldASCII(text))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsSpace(r) || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarkerKey is the narrower normalizer used for marker-token matching: the
// same fold and lowercase as Key, but only literal space characters are
// removed. Tabs and newlines survive, so the two variants are not
// interchangeable.
func MarkerKey(text string) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(foldASCII(text)), " ", "")
}

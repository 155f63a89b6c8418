package match

import (
	"regexp"
	"strings"
)

// ResolveColumns maps target prefixes to actual column names. For each
// prefix, in the order given, the first actual column (in column order)
// whose normalized form starts with the normalized prefix is appended to
// the result unless already present. A prefix with no match contributes
// nothing; an empty result is the caller's decision to treat as fatal or
// merely warn about.
func ResolveColumns(actualColumns []string, targetPrefixes []string) []string {
	var selected []string
	for _, prefix := range targetPrefixes {
		want := Key(prefix)
		for _, col := range actualColumns {
			if !strings.HasPrefix(Key(col), want) {
				continue
			}
			if !contains(selected, col) {
				selected = append(selected, col)
			}
			break
		}
	}
	return selected
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

var needsQuoting = regexp.MustCompile(`[\s()-]`)

// QuoteIfNeeded backtick-quotes a column name containing whitespace,
// parentheses or a hyphen, so it survives interpolation into an identifier
// position. Already-quoted names pass through untouched. Matching semantics
// are unaffected; this is a pure string transform.
func QuoteIfNeeded(name string) string {
	if needsQuoting.MatchString(name) && !(strings.HasPrefix(name, "`") && strings.HasSuffix(name, "`")) {
		return "`" + name + "`"
	}
	return name
}

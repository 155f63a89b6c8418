package match

import "strings"

// Marker literals as they appear in well-formed deliveries. Matching is done
// on normalized forms, so authored variants like "Cat-A" or "( cat-a )"
// still resolve.
const (
	eligibilityPrefix = "eligibility"
	categoryAMarker   = "(cat-a)"
	categoryBMarker   = "(cat-b)"
)

// CategoryColumns locates the two eligibility category columns used for
// aggregation. A column qualifies for a category when its full normalized
// name starts with the eligibility prefix and its marker-normalized form
// contains that category's marker token. First match wins per category and
// a single column never fills both slots. An unmatched category comes back
// as the empty string; the caller decides how loudly to complain.
func CategoryColumns(actualColumns []string) (categoryA, categoryB string) {
	markerA := MarkerKey(categoryAMarker)
	markerB := MarkerKey(categoryBMarker)
	prefix := Key(eligibilityPrefix)

	for _, col := range actualColumns {
		if !strings.HasPrefix(Key(col), prefix) {
			continue
		}
		sub := MarkerKey(col)
		if strings.Contains(sub, markerA) && categoryA == "" {
			categoryA = col
		} else if strings.Contains(sub, markerB) && categoryB == "" {
			categoryB = col
		}
	}
	return categoryA, categoryB
}

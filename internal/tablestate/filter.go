package tablestate

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// IncludesString is the default filter: a case-insensitive substring match
// on the formatted value.
func IncludesString(value any, filter string) bool {
	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(FormatValue(value)), needle)
}

// EqualsString matches when the formatted value equals the filter, ignoring case.
// Useful for categorical columns such as status.
func EqualsString(value any, filter string) bool {
	return strings.EqualFold(FormatValue(value), strings.TrimSpace(filter))
}

// FuzzyFilter matches when the filter's characters appear in order in the value,
// so "wbrd" finds "Website Redesign".
func FuzzyFilter(value any, filter string) bool {
	pattern := strings.TrimSpace(filter)
	if pattern == "" {
		return true
	}
	return len(fuzzy.Find(pattern, []string{FormatValue(value)})) > 0
}

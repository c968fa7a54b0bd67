package question

import (
	"slices"
	"strconv"
	"strings"
)

// NormalizeText trims surrounding whitespace from source text.
func NormalizeText(value string) string {
	return strings.TrimSpace(value)
}

// IsBlank reports whether a source value carries no text.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Label returns the presentation letter for a choice index (A, B, ...).
// Indices past Z fall back to their one-based number.
func Label(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// Labels renders the letters for a set of indices, comma separated.
func Labels(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		parts = append(parts, Label(index))
	}
	return strings.Join(parts, ", ")
}

// normalizeIndices sorts and de-duplicates indices, dropping any outside [0, limit).
func normalizeIndices(indices []int, limit int) []int {
	out := make([]int, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= limit {
			continue
		}
		out = append(out, index)
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

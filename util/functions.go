package util

import (
	"slices"
)

// Unique returns a sorted copy of the input with duplicates removed.
func Unique(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	slices.Sort(out)
	return slices.Compact(out)
}

package textutil

import "strings"

// SplitList splits a comma-separated list and trims each item. Empty items
// are kept so "a,,b" counts three entries; an empty string yields one empty
// item.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// ListCount returns the number of items SplitList would produce.
func ListCount(value string) int {
	return strings.Count(value, ",") + 1
}

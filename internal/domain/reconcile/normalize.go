package reconcile

import (
	"regexp"
	"strings"
)

var numericID = regexp.MustCompile(`^\d+$`)

// padWidths are the zero-padding widths the lab and clinical systems have been
// observed to use for Clinic IDs.
var padWidths = []int{4, 5, 6}

// Variants returns the canonical-key candidates for a raw Clinic ID in fixed
// priority order: the identifier unchanged, then with leading zeros stripped,
// then left-padded to each width in padWidths. Duplicates are removed while
// preserving first position. An empty identifier has no variants, and an
// all-zero identifier never produces the empty string as a variant.
// Non-numeric identifiers match only themselves.
func Variants(raw string) []string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return nil
	}
	if !numericID.MatchString(id) {
		return []string{id}
	}

	variants := []string{id}
	seen := map[string]bool{id: true}

	if stripped := strings.TrimLeft(id, "0"); stripped != "" && !seen[stripped] {
		variants = append(variants, stripped)
		seen[stripped] = true
	}
	for _, w := range padWidths {
		if padded := padLeft(id, w); !seen[padded] {
			variants = append(variants, padded)
			seen[padded] = true
		}
	}
	return variants
}

func padLeft(id string, width int) string {
	if len(id) >= width {
		return id
	}
	return strings.Repeat("0", width-len(id)) + id
}

package reconcile

import "sort"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ViewParams are the consumer-driven view controls. They never change the
// underlying entries; View is a pure post-processing step.
type ViewParams struct {
	Status        string `query:"status"`
	SortField     string `query:"sortField"`
	SortDirection string `query:"sortDirection"`
	Page          int    `query:"page"`
	PageSize      int    `query:"pageSize"`
}

// ViewResult is one page of filtered, sorted entries.
type ViewResult struct {
	Items         []ComparisonEntry `json:"items"`
	TotalFiltered int               `json:"total_filtered"`
}

// View filters entries to one category (or "all"), sorts them stably, and
// returns the requested 1-indexed page. Unknown sort fields fall back to
// clinic_id ascending; out-of-range parameters clamp silently. Ties keep the
// original ingestion order.
func View(entries []ComparisonEntry, p ViewParams) ViewResult {
	filtered := make([]ComparisonEntry, 0, len(entries))
	status := Category(p.Status)
	for _, e := range entries {
		if p.Status == "" || p.Status == "all" || e.Category == status {
			filtered = append(filtered, e)
		}
	}

	cmp, known := comparator(p.SortField)
	// Unknown fields fall back to clinic_id ascending; the direction flag
	// only applies to a recognized field.
	desc := known && p.SortDirection == "desc"
	sort.SliceStable(filtered, func(i, j int) bool {
		c := cmp(&filtered[i], &filtered[j])
		if desc {
			return c > 0
		}
		return c < 0
	})

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return ViewResult{Items: []ComparisonEntry{}, TotalFiltered: len(filtered)}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return ViewResult{Items: filtered[start:end], TotalFiltered: len(filtered)}
}

// comparator returns a three-way compare for the given sort field and whether
// the field is recognized. Unrecognized fields compare by clinic_id.
func comparator(field string) (func(a, b *ComparisonEntry) int, bool) {
	switch field {
	case "lab_primary":
		return numericComparator(func(e *ComparisonEntry) *string {
			if e.Lab == nil {
				return nil
			}
			return e.Lab.PrimaryResult
		}), true
	case "lab_log":
		return numericComparator(func(e *ComparisonEntry) *string {
			if e.Lab == nil {
				return nil
			}
			return e.Lab.LogResult
		}), true
	case "clinical_primary":
		return numericComparator(func(e *ComparisonEntry) *string {
			if e.Clinical == nil {
				return nil
			}
			return e.Clinical.PrimaryValue
		}), true
	case "clinical_log":
		return numericComparator(func(e *ComparisonEntry) *string {
			if e.Clinical == nil {
				return nil
			}
			return e.Clinical.LogValue
		}), true
	case "category":
		return func(a, b *ComparisonEntry) int {
			return categoryRank[a.Category] - categoryRank[b.Category]
		}, true
	case "clinic_id", "":
		return compareClinicID, true
	}
	return compareClinicID, false
}

func compareClinicID(a, b *ComparisonEntry) int {
	switch {
	case a.ClinicID < b.ClinicID:
		return -1
	case a.ClinicID > b.ClinicID:
		return 1
	}
	return 0
}

// numericComparator orders parseable values numerically and places
// non-numeric or absent values after them.
func numericComparator(get func(e *ComparisonEntry) *string) func(a, b *ComparisonEntry) int {
	return func(a, b *ComparisonEntry) int {
		av, aok := parseNumeric(get(a))
		bv, bok := parseNumeric(get(b))
		switch {
		case aok && bok:
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		case aok:
			return -1
		case bok:
			return 1
		}
		return 0
	}
}

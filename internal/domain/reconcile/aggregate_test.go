package reconcile

import "testing"

func entriesWithCategories(cats ...Category) []ComparisonEntry {
	entries := make([]ComparisonEntry, len(cats))
	for i, c := range cats {
		entries[i] = ComparisonEntry{Category: c}
	}
	return entries
}

func TestSummarize(t *testing.T) {
	agg := Summarize(entriesWithCategories(
		CategoryComplete,
		CategoryComplete,
		CategoryComplete,
		CategoryMissingClinical,
		CategoryResultMismatch,
		CategoryIncomplete,
	))

	if agg.Total != 6 {
		t.Errorf("Total = %d, want 6", agg.Total)
	}
	if agg.ByCategory[CategoryComplete] != 3 {
		t.Errorf("complete count = %d, want 3", agg.ByCategory[CategoryComplete])
	}
	if agg.ByCategory[CategoryMissingLabWorkflow] != 0 {
		t.Errorf("missing_lab_workflow count = %d, want 0", agg.ByCategory[CategoryMissingLabWorkflow])
	}

	if agg.Rates[CategoryComplete] != 50.0 {
		t.Errorf("complete rate = %v, want 50.0", agg.Rates[CategoryComplete])
	}
	// 1/6 rounds to one decimal place
	if agg.Rates[CategoryMissingClinical] != 16.7 {
		t.Errorf("missing_clinical rate = %v, want 16.7", agg.Rates[CategoryMissingClinical])
	}
	if agg.Rates[CategoryMissingLabWorkflow] != 0 {
		t.Errorf("missing_lab_workflow rate = %v, want 0", agg.Rates[CategoryMissingLabWorkflow])
	}
}

func TestSummarize_CountsSumToTotal(t *testing.T) {
	agg := Summarize(entriesWithCategories(
		CategoryComplete, CategoryIncomplete, CategoryIncomplete,
		CategoryMissingClinical, CategoryMissingLabWorkflow,
	))
	sum := 0
	for _, n := range agg.ByCategory {
		sum += n
	}
	if sum != agg.Total {
		t.Errorf("category counts sum to %d, Total is %d", sum, agg.Total)
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := Summarize(nil)
	if agg.Total != 0 {
		t.Errorf("Total = %d, want 0", agg.Total)
	}
	for c, r := range agg.Rates {
		if r != 0 {
			t.Errorf("rate for %s = %v, want 0", c, r)
		}
	}
	// Every category must be present even with no entries.
	if len(agg.ByCategory) != len(categoryRank) {
		t.Errorf("ByCategory has %d entries, want %d", len(agg.ByCategory), len(categoryRank))
	}
}

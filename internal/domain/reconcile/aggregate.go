package reconcile

import "math"

// Summarize tallies entries into per-category counts and rate percentages.
// Rates are rounded to one decimal and an empty input yields zero rates, never
// NaN or Inf. The categories partition the entries, so the counts always sum
// to Total.
func Summarize(entries []ComparisonEntry) Aggregate {
	agg := Aggregate{
		Total:      len(entries),
		ByCategory: make(map[Category]int, len(categoryRank)),
		Rates:      make(map[Category]float64, len(categoryRank)),
	}
	for c := range categoryRank {
		agg.ByCategory[c] = 0
		agg.Rates[c] = 0
	}
	for _, e := range entries {
		agg.ByCategory[e.Category]++
	}
	if agg.Total > 0 {
		for c, n := range agg.ByCategory {
			agg.Rates[c] = round1(float64(n) / float64(agg.Total) * 100)
		}
	}
	return agg
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

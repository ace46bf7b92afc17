package records

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a half-open [Start, End) date range used by report queries.
type Period struct {
	Start time.Time
	End   time.Time
}

// ParseQuarter converts a quarter label like "2025-Q1" into its date range.
func ParseQuarter(label string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "-Q", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid quarter label %q, expected YYYY-Qn", label)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("invalid year in quarter label %q", label)
	}
	q, err := strconv.Atoi(parts[1])
	if err != nil || q < 1 || q > 4 {
		return Period{}, fmt.Errorf("invalid quarter number in label %q", label)
	}

	start := time.Date(year, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 3, 0)}, nil
}

// QuarterOf returns the quarter label containing t, e.g. "2025-Q3".
func QuarterOf(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), q)
}

// ParseRange resolves a report window from either explicit start/end dates
// (YYYY-MM-DD, end exclusive after adding one day) or a quarter label. Explicit
// dates win when both are supplied.
func ParseRange(startStr, endStr, quarter string) (Period, error) {
	if startStr != "" || endStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return Period{}, fmt.Errorf("invalid start date %q", startStr)
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return Period{}, fmt.Errorf("invalid end date %q", endStr)
		}
		if !end.After(start) {
			return Period{}, fmt.Errorf("end date must be after start date")
		}
		return Period{Start: start, End: end.AddDate(0, 0, 1)}, nil
	}
	if quarter != "" {
		return ParseQuarter(quarter)
	}
	return Period{}, fmt.Errorf("either start/end dates or a quarter label is required")
}

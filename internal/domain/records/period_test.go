package records

import (
	"testing"
	"time"
)

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		label     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			label:     "2025-Q1",
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			label:     "2025-Q4",
			wantStart: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			label:     " 2024-Q2 ",
			wantStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{label: "2025-Q5", wantErr: true},
		{label: "2025-Q0", wantErr: true},
		{label: "2025Q1", wantErr: true},
		{label: "abcd-Q1", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p, err := ParseQuarter(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.label)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuarter(%q): %v", tt.label, err)
			}
			if !p.Start.Equal(tt.wantStart) || !p.End.Equal(tt.wantEnd) {
				t.Errorf("ParseQuarter(%q) = [%v, %v), want [%v, %v)",
					tt.label, p.Start, p.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-Q1"},
		{time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), "2025-Q1"},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "2025-Q2"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-Q4"},
	}
	for _, tt := range tests {
		if got := QuarterOf(tt.t); got != tt.want {
			t.Errorf("QuarterOf(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	t.Run("explicit dates", func(t *testing.T) {
		p, err := ParseRange("2025-01-01", "2025-03-31", "")
		if err != nil {
			t.Fatalf("ParseRange: %v", err)
		}
		// End is exclusive: the supplied end date itself must be included.
		wantEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		if !p.End.Equal(wantEnd) {
			t.Errorf("End = %v, want %v", p.End, wantEnd)
		}
	})

	t.Run("dates win over quarter", func(t *testing.T) {
		p, err := ParseRange("2025-01-01", "2025-01-31", "2024-Q4")
		if err != nil {
			t.Fatalf("ParseRange: %v", err)
		}
		if p.Start.Year() != 2025 {
			t.Errorf("expected explicit dates to win, got start %v", p.Start)
		}
	})

	t.Run("quarter only", func(t *testing.T) {
		p, err := ParseRange("", "", "2025-Q2")
		if err != nil {
			t.Fatalf("ParseRange: %v", err)
		}
		if !p.Start.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", p.Start)
		}
	})

	t.Run("partial dates rejected", func(t *testing.T) {
		if _, err := ParseRange("2025-01-01", "", ""); err == nil {
			t.Error("expected error when only start is supplied")
		}
	})

	t.Run("inverted dates rejected", func(t *testing.T) {
		if _, err := ParseRange("2025-03-01", "2025-01-01", ""); err == nil {
			t.Error("expected error for inverted range")
		}
	})

	t.Run("nothing supplied", func(t *testing.T) {
		if _, err := ParseRange("", "", ""); err == nil {
			t.Error("expected error when no range is supplied")
		}
	})
}

package reconcile

import (
	"testing"

	"github.com/clindash/clindash/internal/domain/records"
)

func clinicalWithID(id string) records.ClinicalRecord {
	return records.ClinicalRecord{ClinicID: id}
}

func TestClinicalIndex_LookupAcrossPadding(t *testing.T) {
	idx := BuildClinicalIndex([]records.ClinicalRecord{
		clinicalWithID("638"),
		clinicalWithID("0942"),
		clinicalWithID("CL-42"),
	})

	tests := []struct {
		lookup string
		wantID string
	}{
		{"638", "638"},
		{"000638", "638"},
		{"0638", "638"},
		{"942", "0942"},
		{"00942", "0942"},
		{"CL-42", "CL-42"},
	}
	for _, tt := range tests {
		rec := idx.Lookup(tt.lookup)
		if rec == nil {
			t.Errorf("Lookup(%q) = nil, want record %q", tt.lookup, tt.wantID)
			continue
		}
		if rec.ClinicID != tt.wantID {
			t.Errorf("Lookup(%q) = %q, want %q", tt.lookup, rec.ClinicID, tt.wantID)
		}
	}

	if rec := idx.Lookup("9999"); rec != nil {
		t.Errorf("Lookup(%q) = %q, want nil", "9999", rec.ClinicID)
	}
	if rec := idx.Lookup(""); rec != nil {
		t.Error("Lookup of empty identifier should return nil")
	}
}

func TestBuildClinicalIndex_LaterRecordWins(t *testing.T) {
	a := clinicalWithID("638")
	a.Sex = strPtr("F")
	b := clinicalWithID("0638")
	b.Sex = strPtr("M")

	idx := BuildClinicalIndex([]records.ClinicalRecord{a, b})

	// Both records share the variant "638"; the later insertion must win.
	rec := idx.Lookup("638")
	if rec == nil {
		t.Fatal("expected a record for shared variant")
	}
	if rec.Sex == nil || *rec.Sex != "M" {
		t.Errorf("expected later record to win, got ClinicID=%q", rec.ClinicID)
	}
}

func TestKeySet_ContainsAny(t *testing.T) {
	set := buildKeySet([]string{"638", "CL-42"})

	for _, id := range []string{"638", "000638", "0638", "CL-42"} {
		if !set.containsAny(id) {
			t.Errorf("containsAny(%q) = false, want true", id)
		}
	}
	for _, id := range []string{"639", "", "CL-43"} {
		if set.containsAny(id) {
			t.Errorf("containsAny(%q) = true, want false", id)
		}
	}
}

package reconcile

import (
	"reflect"
	"testing"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"short numeric", "638", []string{"638", "0638", "00638", "000638"}},
		{"leading zeros", "000638", []string{"000638", "638", "0638", "00638"}},
		{"four digits", "0942", []string{"0942", "942", "00942", "000942"}},
		{"width four exact", "1234", []string{"1234", "01234", "001234"}},
		{"width six exact", "123456", []string{"123456"}},
		{"longer than six", "1234567", []string{"1234567"}},
		{"all zeros", "000", []string{"000", "0000", "00000", "000000"}},
		{"non-numeric", "CL-42", []string{"CL-42"}},
		{"whitespace trimmed", "  638 ", []string{"638", "0638", "00638", "000638"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variants(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Variants(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVariants_NoDuplicates(t *testing.T) {
	for _, id := range []string{"638", "0638", "00001", "000000", "9"} {
		seen := map[string]bool{}
		for _, v := range Variants(id) {
			if seen[v] {
				t.Errorf("Variants(%q) contains duplicate %q", id, v)
			}
			seen[v] = true
		}
	}
}

func TestVariants_NeverEmpty(t *testing.T) {
	for _, id := range []string{"0", "00", "000000"} {
		for _, v := range Variants(id) {
			if v == "" {
				t.Errorf("Variants(%q) produced the empty string", id)
			}
		}
	}
}

package reconcile

import "github.com/clindash/clindash/internal/domain/records"

// ClinicalIndex is a lookup table over one run's clinical records, keyed by
// every canonical-key variant of each record's Clinic ID.
type ClinicalIndex struct {
	byKey map[string]*records.ClinicalRecord
}

// BuildClinicalIndex indexes recs under all of their identifier variants.
// When two records share a variant the later-inserted record wins. That
// mirrors the legacy dashboards, which never de-duplicated, and downstream
// aggregate counts depend on it; do not change without product sign-off.
func BuildClinicalIndex(recs []records.ClinicalRecord) *ClinicalIndex {
	idx := &ClinicalIndex{byKey: make(map[string]*records.ClinicalRecord, len(recs))}
	for i := range recs {
		for _, key := range Variants(recs[i].ClinicID) {
			idx.byKey[key] = &recs[i]
		}
	}
	return idx
}

// Lookup resolves a raw lab identifier to at most one clinical record,
// trying the identifier's variants in priority order.
func (x *ClinicalIndex) Lookup(rawID string) *records.ClinicalRecord {
	for _, key := range Variants(rawID) {
		if rec, ok := x.byKey[key]; ok {
			return rec
		}
	}
	return nil
}

// keySet tracks every variant of a collection of identifiers. It answers the
// symmetric question to Lookup: does any lab record answer to this clinical
// identifier, under any variant of either side.
type keySet map[string]bool

func buildKeySet(ids []string) keySet {
	set := make(keySet, len(ids))
	for _, id := range ids {
		for _, key := range Variants(id) {
			set[key] = true
		}
	}
	return set
}

func (s keySet) containsAny(rawID string) bool {
	for _, key := range Variants(rawID) {
		if s[key] {
			return true
		}
	}
	return false
}

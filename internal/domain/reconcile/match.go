package reconcile

import (
	"strconv"
	"strings"

	"github.com/clindash/clindash/internal/domain/records"
)

// Reconcile matches labs against clinicals and classifies every pairing.
// It emits exactly one entry per distinct canonical identity present in the
// union of both collections: one per lab record with a usable identifier, plus
// one per materially relevant clinical record no lab record answers to.
// Records with an empty identifier are dropped and counted in the returned
// warnings; they never merge into another record.
func Reconcile(labs []records.LabRecord, clinicals []records.ClinicalRecord) ([]ComparisonEntry, []Warning) {
	idx := BuildClinicalIndex(clinicals)

	emptyIDs := 0
	labIDs := make([]string, 0, len(labs))
	entries := make([]ComparisonEntry, 0, len(labs))

	for i := range labs {
		lab := &labs[i]
		if strings.TrimSpace(lab.ClinicID) == "" {
			emptyIDs++
			continue
		}
		labIDs = append(labIDs, lab.ClinicID)
		entries = append(entries, classify(lab.ClinicID, lab, idx.Lookup(lab.ClinicID)))
	}

	labKeys := buildKeySet(labIDs)
	for i := range clinicals {
		cr := &clinicals[i]
		if strings.TrimSpace(cr.ClinicID) == "" {
			emptyIDs++
			continue
		}
		if labKeys.containsAny(cr.ClinicID) {
			continue
		}
		if !materiallyRelevant(cr) {
			continue
		}
		entries = append(entries, classify(cr.ClinicID, nil, cr))
	}

	// Always a non-nil slice so the payload carries [] rather than null.
	warnings := make([]Warning, 0, 1)
	if emptyIDs > 0 {
		warnings = append(warnings, Warning{Kind: WarningEmptyIdentifier, Count: emptyIDs})
	}
	return entries, warnings
}

// materiallyRelevant decides whether a clinical record with no lab counterpart
// deserves its own entry. The rule shared by all call sites: the record must
// carry a non-zero primary value. Textual values count as relevant because a
// recorded textual result still represents clinical data awaiting lab workflow.
func materiallyRelevant(cr *records.ClinicalRecord) bool {
	if cr.PrimaryValue == nil {
		return false
	}
	v := strings.TrimSpace(*cr.PrimaryValue)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f != 0
	}
	return true
}

package reconcile

import (
	"math"
	"strconv"
	"strings"

	"github.com/clindash/clindash/internal/domain/records"
)

// Numeric concordance tolerances: absolute difference allowed between the lab
// result and the clinically recorded value.
const (
	primaryTolerance = 1.0
	logTolerance     = 0.1
)

// notDetected is the lab system's textual result for undetectable samples.
// It is excluded from numeric comparison but still counts toward completeness.
const notDetected = "not detected"

// Missing-field display names, appended in this fixed order so that output is
// deterministic and snapshot-stable.
const (
	missingClinicalRecord = "Complete Clinical Record"
	missingClinicalValue  = "Clinical Primary Value"
	missingClinicalDate   = "Clinical Record Date"
	missingCollectionDate = "Collection Date"
	missingReceivedDate   = "Received Date"
	missingValidatedDate  = "Validated Date"
	missingTestedDate     = "Tested Date"
	missingIssuedDate     = "Issued Date"
)

// classify builds the ComparisonEntry for one lab/clinical pairing. Either
// side may be nil, never both. Category is derived here and nowhere else.
func classify(clinicID string, lab *records.LabRecord, clinical *records.ClinicalRecord) ComparisonEntry {
	entry := ComparisonEntry{
		ClinicID: clinicID,
		Lab:      lab,
		Clinical: clinical,
	}

	if lab != nil {
		entry.WorkflowFlags = WorkflowFlags{
			Collected: lab.CollectedAt != nil,
			Received:  lab.ReceivedAt != nil,
			Validated: lab.ValidatedAt != nil,
			Tested:    lab.TestedAt != nil,
			Issued:    lab.IssuedAt != nil,
		}
	}
	entry.WorkflowFlags.HasClinicalRecord = clinical != nil

	entry.MissingFields = missingFields(lab, clinical)

	var primaryComparable, logComparable bool
	if lab != nil && clinical != nil {
		entry.Concordance.NumericMatch, primaryComparable =
			primaryConcordance(lab.PrimaryResult, clinical.PrimaryValue)
		entry.Concordance.LogMatch, logComparable =
			numericConcordance(lab.LogResult, clinical.LogValue, logTolerance)
	}

	entry.Category = categorize(entry, primaryComparable, logComparable)
	return entry
}

// missingFields lists every gap in the pairing, in display order: the absent
// clinical match first, then clinical field gaps, then lab workflow gaps in
// process order (collection through issuance).
func missingFields(lab *records.LabRecord, clinical *records.ClinicalRecord) []string {
	var missing []string

	if lab != nil && clinical == nil {
		missing = append(missing, missingClinicalRecord)
	}
	if clinical != nil {
		if !hasNonZeroValue(clinical.PrimaryValue) {
			missing = append(missing, missingClinicalValue)
		}
		if clinical.RecordedAt == nil {
			missing = append(missing, missingClinicalDate)
		}
	}
	if lab != nil {
		if lab.CollectedAt == nil {
			missing = append(missing, missingCollectionDate)
		}
		if lab.ReceivedAt == nil {
			missing = append(missing, missingReceivedDate)
		}
		if lab.ValidatedAt == nil {
			missing = append(missing, missingValidatedDate)
		}
		if lab.TestedAt == nil {
			missing = append(missing, missingTestedDate)
		}
		if lab.IssuedAt == nil {
			missing = append(missing, missingIssuedDate)
		}
	}
	return missing
}

// categorize applies the category precedence. First match wins.
func categorize(entry ComparisonEntry, primaryComparable, logComparable bool) Category {
	switch {
	case entry.Lab != nil && entry.Clinical == nil:
		return CategoryMissingClinical
	case entry.Lab == nil && entry.Clinical != nil:
		return CategoryMissingLabWorkflow
	case (primaryComparable && !entry.Concordance.NumericMatch) ||
		(logComparable && !entry.Concordance.LogMatch):
		return CategoryResultMismatch
	case primaryComparable && entry.Concordance.NumericMatch:
		// A concordant confirmed result classifies as complete even when
		// workflow timestamps are still missing.
		return CategoryComplete
	case len(entry.MissingFields) > 0:
		return CategoryIncomplete
	}
	return CategoryComplete
}

// primaryConcordance compares the lab primary result against the clinical
// value. The literal "Not Detected" never enters a numeric comparison; the
// pair is simply not comparable and cannot count as a mismatch.
func primaryConcordance(labResult, clinicalValue *string) (match, comparable bool) {
	if labResult != nil && strings.EqualFold(strings.TrimSpace(*labResult), notDetected) {
		return false, false
	}
	return numericConcordance(labResult, clinicalValue, primaryTolerance)
}

// numericConcordance parses both sides as floats and checks the absolute
// difference against tolerance. Absent or malformed values make the pair
// non-comparable rather than an error.
func numericConcordance(labVal, clinicalVal *string, tolerance float64) (match, comparable bool) {
	lv, ok := parseNumeric(labVal)
	if !ok {
		return false, false
	}
	cv, ok := parseNumeric(clinicalVal)
	if !ok {
		return false, false
	}
	return math.Abs(lv-cv) <= tolerance, true
}

func parseNumeric(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// hasNonZeroValue reports whether a clinical primary value is present and not
// literally zero. Textual values count as present.
func hasNonZeroValue(s *string) bool {
	if s == nil {
		return false
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f != 0
	}
	return true
}

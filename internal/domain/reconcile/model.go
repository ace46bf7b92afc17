package reconcile

import "github.com/clindash/clindash/internal/domain/records"

// Category classifies one reconciliation entry. Exactly one category applies
// per entry; precedence is enforced in classify, never set elsewhere.
type Category string

const (
	CategoryMissingClinical    Category = "missing_clinical"
	CategoryMissingLabWorkflow Category = "missing_lab_workflow"
	CategoryResultMismatch     Category = "result_mismatch"
	CategoryIncomplete         Category = "incomplete"
	CategoryComplete           Category = "complete"
)

// categoryRank fixes the sort order used by the "category" sort field.
var categoryRank = map[Category]int{
	CategoryMissingClinical:    0,
	CategoryMissingLabWorkflow: 1,
	CategoryResultMismatch:     2,
	CategoryIncomplete:         3,
	CategoryComplete:           4,
}

// Label returns the human-readable form used in the CSV export and UI.
func (c Category) Label() string {
	switch c {
	case CategoryMissingClinical:
		return "Missing Clinical Record"
	case CategoryMissingLabWorkflow:
		return "Missing Lab Workflow"
	case CategoryResultMismatch:
		return "Result Mismatch"
	case CategoryIncomplete:
		return "Incomplete"
	case CategoryComplete:
		return "Complete"
	}
	return string(c)
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryRank[c]
	return ok
}

// WorkflowFlags records the presence of each lab workflow timestamp and of a
// matched clinical record.
type WorkflowFlags struct {
	Collected         bool `json:"collected"`
	Received          bool `json:"received"`
	Validated         bool `json:"validated"`
	Tested            bool `json:"tested"`
	Issued            bool `json:"issued"`
	HasClinicalRecord bool `json:"has_clinical_record"`
}

// Concordance reports agreement between lab and clinical numeric results.
// A false value means either disagreement or that no comparison was possible;
// classification distinguishes the two internally.
type Concordance struct {
	NumericMatch bool `json:"numeric_match"`
	LogMatch     bool `json:"log_match"`
}

// ComparisonEntry is the unit of reconciliation output: one lab/clinical
// pairing (either side possibly absent) plus its computed classification.
type ComparisonEntry struct {
	ClinicID      string                  `json:"clinic_id"`
	Lab           *records.LabRecord      `json:"lab,omitempty"`
	Clinical      *records.ClinicalRecord `json:"clinical,omitempty"`
	WorkflowFlags WorkflowFlags           `json:"workflow_flags"`
	MissingFields []string                `json:"missing_fields"`
	Concordance   Concordance             `json:"concordance"`
	Category      Category                `json:"category"`
}

// Aggregate summarizes one run's entries by category.
type Aggregate struct {
	Total      int                  `json:"total"`
	ByCategory map[Category]int     `json:"by_category"`
	Rates      map[Category]float64 `json:"rates"`
}

// Warning kinds reported alongside a reconciliation result.
const WarningEmptyIdentifier = "EmptyIdentifier"

// Warning counts records that were dropped before matching.
type Warning struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Result is the full output of one reconciliation run.
type Result struct {
	Entries   []ComparisonEntry `json:"entries"`
	Aggregate Aggregate         `json:"aggregate"`
	Warnings  []Warning         `json:"warnings"`
}

package reconcile

import (
	"io"
	"strings"
	"time"
)

// csvHeader fixes the export column order. This is a user-facing download
// contract; do not reorder.
var csvHeader = []string{
	"Clinic ID",
	"Lab Primary",
	"Lab Log",
	"Lab Test Date",
	"Lab Issued Date",
	"Clinical Primary",
	"Clinical Log",
	"Clinical Date",
	"Status",
	"Missing Fields",
	"Primary Match",
	"Log Match",
	"Collected",
	"Received",
	"Validated",
	"Tested",
	"Issued",
	"Has Clinical Record",
}

// WriteCSV writes entries in the export format: one header row, one row per
// entry, cells containing comma, quote, or newline wrapped in double quotes
// with internal quotes doubled.
func WriteCSV(w io.Writer, entries []ComparisonEntry) error {
	if err := writeCSVRow(w, csvHeader); err != nil {
		return err
	}
	for i := range entries {
		if err := writeCSVRow(w, csvRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(e *ComparisonEntry) []string {
	var labPrimary, labLog, labTested, labIssued string
	if e.Lab != nil {
		labPrimary = strDeref(e.Lab.PrimaryResult)
		labLog = strDeref(e.Lab.LogResult)
		labTested = dateStr(e.Lab.TestedAt)
		labIssued = dateStr(e.Lab.IssuedAt)
	}
	var clinPrimary, clinLog, clinDate string
	if e.Clinical != nil {
		clinPrimary = strDeref(e.Clinical.PrimaryValue)
		clinLog = strDeref(e.Clinical.LogValue)
		clinDate = dateStr(e.Clinical.RecordedAt)
	}

	return []string{
		e.ClinicID,
		labPrimary,
		labLog,
		labTested,
		labIssued,
		clinPrimary,
		clinLog,
		clinDate,
		e.Category.Label(),
		strings.Join(e.MissingFields, "; "),
		yesNo(e.Concordance.NumericMatch),
		yesNo(e.Concordance.LogMatch),
		yesNo(e.WorkflowFlags.Collected),
		yesNo(e.WorkflowFlags.Received),
		yesNo(e.WorkflowFlags.Validated),
		yesNo(e.WorkflowFlags.Tested),
		yesNo(e.WorkflowFlags.Issued),
		yesNo(e.WorkflowFlags.HasClinicalRecord),
	}
}

func writeCSVRow(w io.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, quoteCSVCell(cell)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// quoteCSVCell quotes only when the contract requires it: the cell contains a
// comma, a double quote, or a newline.
func quoteCSVCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n\r") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func dateStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

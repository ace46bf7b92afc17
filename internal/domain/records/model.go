package records

import (
	"time"

	"github.com/google/uuid"
)

// LabRecord maps to the lab_result table: one workflow record from the
// laboratory information system. ClinicID is the raw identifier exactly as the
// lab system reported it, including any leading zeros.
type LabRecord struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	SiteCode      string     `db:"site_code" json:"site_code"`
	ClinicID      string     `db:"clinic_id" json:"clinic_id"`
	TestType      string     `db:"test_type" json:"test_type"`
	CollectedAt   *time.Time `db:"collected_at" json:"collected_at,omitempty"`
	ReceivedAt    *time.Time `db:"received_at" json:"received_at,omitempty"`
	ValidatedAt   *time.Time `db:"validated_at" json:"validated_at,omitempty"`
	TestedAt      *time.Time `db:"tested_at" json:"tested_at,omitempty"`
	IssuedAt      *time.Time `db:"issued_at" json:"issued_at,omitempty"`
	PrimaryResult *string    `db:"primary_result" json:"primary_result,omitempty"`
	LogResult     *string    `db:"log_result" json:"log_result,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// ClinicalRecord maps to the clinical_record table: the clinical system's view
// of the same logical patient-test event. The descriptive fields (sex, age,
// site) pass through to consumers unmodified.
type ClinicalRecord struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	SiteCode     string     `db:"site_code" json:"site_code"`
	ClinicID     string     `db:"clinic_id" json:"clinic_id"`
	RecordedAt   *time.Time `db:"recorded_at" json:"recorded_at,omitempty"`
	PrimaryValue *string    `db:"primary_value" json:"primary_value,omitempty"`
	LogValue     *string    `db:"log_value" json:"log_value,omitempty"`
	Sex          *string    `db:"sex" json:"sex,omitempty"`
	AgeMonths    *int       `db:"age_months" json:"age_months,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

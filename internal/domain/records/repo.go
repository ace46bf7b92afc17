package records

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LabRecordRepository provides access to laboratory workflow records.
type LabRecordRepository interface {
	Create(ctx context.Context, r *LabRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*LabRecord, error)
	List(ctx context.Context, siteCode string, limit, offset int) ([]*LabRecord, int, error)
	ListBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]LabRecord, error)
}

// ClinicalRecordRepository provides access to clinical-system records.
type ClinicalRecordRepository interface {
	Create(ctx context.Context, r *ClinicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*ClinicalRecord, error)
	List(ctx context.Context, siteCode string, limit, offset int) ([]*ClinicalRecord, int, error)
	ListBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]ClinicalRecord, error)
}

package records

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	labs      LabRecordRepository
	clinicals ClinicalRecordRepository
}

func NewService(labs LabRecordRepository, clinicals ClinicalRecordRepository) *Service {
	return &Service{labs: labs, clinicals: clinicals}
}

func (s *Service) CreateLabRecord(ctx context.Context, lr *LabRecord) error {
	if lr.SiteCode == "" {
		return fmt.Errorf("site_code is required")
	}
	if lr.TestType == "" {
		return fmt.Errorf("test_type is required")
	}
	return s.labs.Create(ctx, lr)
}

func (s *Service) GetLabRecord(ctx context.Context, id uuid.UUID) (*LabRecord, error) {
	return s.labs.GetByID(ctx, id)
}

func (s *Service) ListLabRecords(ctx context.Context, siteCode string, limit, offset int) ([]*LabRecord, int, error) {
	return s.labs.List(ctx, siteCode, limit, offset)
}

func (s *Service) ListLabRecordsBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]LabRecord, error) {
	return s.labs.ListBySiteAndRange(ctx, siteCode, start, end)
}

func (s *Service) CreateClinicalRecord(ctx context.Context, cr *ClinicalRecord) error {
	if cr.SiteCode == "" {
		return fmt.Errorf("site_code is required")
	}
	return s.clinicals.Create(ctx, cr)
}

func (s *Service) GetClinicalRecord(ctx context.Context, id uuid.UUID) (*ClinicalRecord, error) {
	return s.clinicals.GetByID(ctx, id)
}

func (s *Service) ListClinicalRecords(ctx context.Context, siteCode string, limit, offset int) ([]*ClinicalRecord, int, error) {
	return s.clinicals.List(ctx, siteCode, limit, offset)
}

func (s *Service) ListClinicalRecordsBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]ClinicalRecord, error) {
	return s.clinicals.ListBySiteAndRange(ctx, siteCode, start, end)
}

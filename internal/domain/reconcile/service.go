package reconcile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clindash/clindash/internal/domain/records"
)

// LabSource fetches the laboratory collection for one run.
type LabSource interface {
	ListLabRecordsBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]records.LabRecord, error)
}

// ClinicalSource fetches the clinical collection for one run.
type ClinicalSource interface {
	ListClinicalRecordsBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]records.ClinicalRecord, error)
}

// Request identifies one reconciliation run.
type Request struct {
	SiteCode string
	Start    time.Time
	End      time.Time
}

// Service runs reconciliations. It holds no state between runs; every call
// produces a fresh Result from freshly fetched collections.
type Service struct {
	labs      LabSource
	clinicals ClinicalSource
}

func NewService(labs LabSource, clinicals ClinicalSource) *Service {
	return &Service{labs: labs, clinicals: clinicals}
}

// Run fetches both collections concurrently and reconciles them. The fetches
// share the request context: if either fails or the caller cancels, both are
// abandoned and a single error is returned — never a result built from a
// partial pair.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.SiteCode == "" {
		return nil, fmt.Errorf("site code is required")
	}
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("end must be after start")
	}

	var (
		labs      []records.LabRecord
		clinicals []records.ClinicalRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		labs, err = s.labs.ListLabRecordsBySiteAndRange(gctx, req.SiteCode, req.Start, req.End)
		if err != nil {
			return fmt.Errorf("fetch lab records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		clinicals, err = s.clinicals.ListClinicalRecordsBySiteAndRange(gctx, req.SiteCode, req.Start, req.End)
		if err != nil {
			return fmt.Errorf("fetch clinical records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reconciliation unavailable: %w", err)
	}

	entries, warnings := Reconcile(labs, clinicals)
	return &Result{
		Entries:   entries,
		Aggregate: Summarize(entries),
		Warnings:  warnings,
	}, nil
}

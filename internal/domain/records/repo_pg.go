package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== LabRecord Repository ===========

type labRecordRepoPG struct{ pool *pgxpool.Pool }

func NewLabRecordRepoPG(pool *pgxpool.Pool) LabRecordRepository {
	return &labRecordRepoPG{pool: pool}
}

const labCols = `id, site_code, clinic_id, test_type,
	collected_at, received_at, validated_at, tested_at, issued_at,
	primary_result, log_result, created_at, updated_at`

func scanLab(row pgx.Row) (*LabRecord, error) {
	var lr LabRecord
	err := row.Scan(&lr.ID, &lr.SiteCode, &lr.ClinicID, &lr.TestType,
		&lr.CollectedAt, &lr.ReceivedAt, &lr.ValidatedAt, &lr.TestedAt, &lr.IssuedAt,
		&lr.PrimaryResult, &lr.LogResult, &lr.CreatedAt, &lr.UpdatedAt)
	return &lr, err
}

func (r *labRecordRepoPG) Create(ctx context.Context, lr *LabRecord) error {
	lr.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lab_result (id, site_code, clinic_id, test_type,
			collected_at, received_at, validated_at, tested_at, issued_at,
			primary_result, log_result)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		lr.ID, lr.SiteCode, lr.ClinicID, lr.TestType,
		lr.CollectedAt, lr.ReceivedAt, lr.ValidatedAt, lr.TestedAt, lr.IssuedAt,
		lr.PrimaryResult, lr.LogResult)
	return err
}

func (r *labRecordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabRecord, error) {
	return scanLab(r.pool.QueryRow(ctx, `SELECT `+labCols+` FROM lab_result WHERE id = $1`, id))
}

func (r *labRecordRepoPG) List(ctx context.Context, siteCode string, limit, offset int) ([]*LabRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_result WHERE site_code = $1`, siteCode).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `SELECT `+labCols+` FROM lab_result
		WHERE site_code = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		siteCode, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*LabRecord
	for rows.Next() {
		lr, err := scanLab(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, lr)
	}
	return result, total, rows.Err()
}

func (r *labRecordRepoPG) ListBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]LabRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+labCols+` FROM lab_result
		WHERE site_code = $1 AND issued_at >= $2 AND issued_at < $3
		ORDER BY issued_at, id`,
		siteCode, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LabRecord
	for rows.Next() {
		lr, err := scanLab(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *lr)
	}
	return result, rows.Err()
}

// =========== ClinicalRecord Repository ===========

type clinicalRecordRepoPG struct{ pool *pgxpool.Pool }

func NewClinicalRecordRepoPG(pool *pgxpool.Pool) ClinicalRecordRepository {
	return &clinicalRecordRepoPG{pool: pool}
}

const clinicalCols = `id, site_code, clinic_id, recorded_at,
	primary_value, log_value, sex, age_months, created_at, updated_at`

func scanClinical(row pgx.Row) (*ClinicalRecord, error) {
	var cr ClinicalRecord
	err := row.Scan(&cr.ID, &cr.SiteCode, &cr.ClinicID, &cr.RecordedAt,
		&cr.PrimaryValue, &cr.LogValue, &cr.Sex, &cr.AgeMonths, &cr.CreatedAt, &cr.UpdatedAt)
	return &cr, err
}

func (r *clinicalRecordRepoPG) Create(ctx context.Context, cr *ClinicalRecord) error {
	cr.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clinical_record (id, site_code, clinic_id, recorded_at,
			primary_value, log_value, sex, age_months)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		cr.ID, cr.SiteCode, cr.ClinicID, cr.RecordedAt,
		cr.PrimaryValue, cr.LogValue, cr.Sex, cr.AgeMonths)
	return err
}

func (r *clinicalRecordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*ClinicalRecord, error) {
	return scanClinical(r.pool.QueryRow(ctx, `SELECT `+clinicalCols+` FROM clinical_record WHERE id = $1`, id))
}

func (r *clinicalRecordRepoPG) List(ctx context.Context, siteCode string, limit, offset int) ([]*ClinicalRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinical_record WHERE site_code = $1`, siteCode).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `SELECT `+clinicalCols+` FROM clinical_record
		WHERE site_code = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		siteCode, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*ClinicalRecord
	for rows.Next() {
		cr, err := scanClinical(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, cr)
	}
	return result, total, rows.Err()
}

func (r *clinicalRecordRepoPG) ListBySiteAndRange(ctx context.Context, siteCode string, start, end time.Time) ([]ClinicalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clinicalCols+` FROM clinical_record
		WHERE site_code = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at, id`,
		siteCode, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ClinicalRecord
	for rows.Next() {
		cr, err := scanClinical(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *cr)
	}
	return result, rows.Err()
}

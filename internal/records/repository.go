package records

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const recordColumns = `
		r.id, r.patient_name, r.patient_email, r.doctor_id,
		COALESCE(d.name, ''), COALESCE(d.specialty, ''),
		to_char(r.record_date, 'YYYY-MM-DD'), r.diagnosis,
		COALESCE(r.treatment, ''), COALESCE(r.notes, ''), r.created_at`

// ListRecords returns every medical record, newest first.
func (r *Repository) ListRecords(ctx context.Context) ([]RecordResponse, error) {
	query := `
		SELECT` + recordColumns + `
		FROM medical_records r
		LEFT JOIN doctors d ON d.id = r.doctor_id
		ORDER BY r.record_date DESC`

	return r.queryRecords(ctx, query)
}

// ListByPatient returns the medical records for one patient email,
// newest first.
func (r *Repository) ListByPatient(ctx context.Context, email string) ([]RecordResponse, error) {
	query := `
		SELECT` + recordColumns + `
		FROM medical_records r
		LEFT JOIN doctors d ON d.id = r.doctor_id
		WHERE LOWER(r.patient_email) = LOWER($1)
		ORDER BY r.record_date DESC`

	return r.queryRecords(ctx, query, email)
}

func (r *Repository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]RecordResponse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	defer rows.Close()

	var records []RecordResponse
	for rows.Next() {
		var rec RecordResponse
		err := rows.Scan(
			&rec.ID, &rec.PatientName, &rec.PatientEmail, &rec.DoctorID,
			&rec.DoctorName, &rec.DoctorSpecialty,
			&rec.RecordDate, &rec.Diagnosis, &rec.Treatment, &rec.Notes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

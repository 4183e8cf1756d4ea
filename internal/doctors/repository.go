package doctors

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

// ListDoctors returns one page of the directory plus the unfiltered match
// count. Specialty is an equality filter, search is a case-insensitive
// pattern match on the name.
func (r *Repository) ListDoctors(ctx context.Context, specialty, search string, limit, offset int) ([]DoctorResponse, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if specialty != "" {
		where += fmt.Sprintf(" AND specialty = $%d", argIndex)
		args = append(args, specialty)
		argIndex++
	}
	if search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := "SELECT COUNT(*) FROM doctors " + where

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, specialty, rating, review_count, experience, image_url, created_at
		FROM doctors
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []DoctorResponse
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, *doctor)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, total, nil
}

// GetDoctor returns a single doctor by id.
func (r *Repository) GetDoctor(ctx context.Context, id string) (*DoctorResponse, error) {
	query := `
		SELECT id, name, specialty, rating, review_count, experience, image_url, created_at
		FROM doctors
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	doctor, err := scanDoctor(row)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query doctor: %w", err)
	}

	return doctor, nil
}

// ListSpecialties returns the distinct specialty values in the directory.
func (r *Repository) ListSpecialties(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT specialty FROM doctors ORDER BY specialty ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query specialties: %w", err)
	}
	defer rows.Close()

	var specialties []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan specialty: %w", err)
		}
		specialties = append(specialties, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specialties: %w", err)
	}

	return specialties, nil
}

// CountDoctors returns the total number of doctors.
func (r *Repository) CountDoctors(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}

// ListAllDoctors returns every doctor, used by the analytics aggregation.
func (r *Repository) ListAllDoctors(ctx context.Context) ([]DoctorResponse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, specialty, rating, review_count, experience, image_url, created_at
		FROM doctors
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []DoctorResponse
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, *doctor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoctor(row rowScanner) (*DoctorResponse, error) {
	var doctor DoctorResponse
	var experience sql.NullString
	var imageURL sql.NullString

	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Rating,
		&doctor.ReviewCount,
		&experience,
		&imageURL,
		&doctor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if experience.Valid {
		doctor.Experience = experience.String
	}
	if imageURL.Valid {
		doctor.ImageURL = imageURL.String
	}

	return &doctor, nil
}

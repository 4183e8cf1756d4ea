package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const appointmentColumns = `
		a.id, a.doctor_id, COALESCE(d.name, ''), COALESCE(d.specialty, ''), COALESCE(d.image_url, ''),
		a.patient_name, a.patient_email, to_char(a.appointment_date, 'YYYY-MM-DD'),
		a.appointment_time, a.location, COALESCE(a.reason, ''), a.status, a.created_at`

// CreateAppointment inserts a new upcoming appointment and returns it with
// the doctor joined in.
func (r *Repository) CreateAppointment(ctx context.Context, req *BookAppointmentRequest) (*AppointmentResponse, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO appointments (id, doctor_id, patient_name, patient_email,
			appointment_date, appointment_time, location, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, NOW())`

	_, err := r.db.ExecContext(ctx, query,
		id, req.DoctorID, req.PatientName, req.PatientEmail,
		req.AppointmentDate, req.AppointmentTime, req.Location, req.Reason, StatusUpcoming)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return r.GetAppointment(ctx, id)
}

// GetAppointment fetches a single appointment by id.
func (r *Repository) GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1`

	appointment, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appointment, nil
}

// ListByPatient returns every appointment for the given patient email,
// optionally narrowed to one status bucket, newest date first.
func (r *Repository) ListByPatient(ctx context.Context, email, status string) ([]AppointmentResponse, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		WHERE LOWER(a.patient_email) = LOWER($1)`

	args := []interface{}{email}
	if status != "" {
		query += ` AND a.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY a.appointment_date DESC, a.appointment_time DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []AppointmentResponse
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	return appointments, rows.Err()
}

// UpdateStatus performs a partial update touching only the status column.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountByStatus returns the number of appointments in each status bucket.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CountAppointments returns the total number of appointments.
func (r *Repository) CountAppointments(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return total, nil
}

// ListAllAppointments returns every appointment with the doctor joined in,
// for the admin analytics views.
func (r *Repository) ListAllAppointments(ctx context.Context) ([]AppointmentResponse, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		ORDER BY a.appointment_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []AppointmentResponse
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	return appointments, rows.Err()
}

// CompletePastAppointments moves every upcoming appointment dated strictly
// before the given day to completed and returns the affected rows.
func (r *Repository) CompletePastAppointments(ctx context.Context, before time.Time) ([]AppointmentResponse, error) {
	query := `
		UPDATE appointments SET status = $1
		WHERE status = $2 AND appointment_date < $3
		RETURNING id, doctor_id, '', '', '',
			patient_name, patient_email, to_char(appointment_date, 'YYYY-MM-DD'),
			appointment_time, location, COALESCE(reason, ''), status, created_at`

	rows, err := r.db.QueryContext(ctx, query,
		StatusCompleted, StatusUpcoming, before.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to complete past appointments: %w", err)
	}
	defer rows.Close()

	var completed []AppointmentResponse
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		completed = append(completed, *appointment)
	}

	return completed, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*AppointmentResponse, error) {
	var a AppointmentResponse
	err := row.Scan(
		&a.ID, &a.DoctorID, &a.DoctorName, &a.DoctorSpecialty, &a.DoctorImageURL,
		&a.PatientName, &a.PatientEmail, &a.AppointmentDate,
		&a.AppointmentTime, &a.Location, &a.Reason, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

package enquiries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const enquiryColumns = `id, name, email, COALESCE(phone, ''), subject, message, status, created_at`

// CreateEnquiry stores a new contact-form submission in the "new" state.
func (r *Repository) CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO enquiries (id, name, email, phone, subject, message, status, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NOW())
		RETURNING ` + enquiryColumns

	enquiry, err := scanEnquiry(r.db.QueryRowContext(ctx, query,
		id, req.Name, req.Email, req.Phone, req.Subject, req.Message, StatusNew))
	if err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	return enquiry, nil
}

// GetEnquiry fetches a single enquiry by id.
func (r *Repository) GetEnquiry(ctx context.Context, id string) (*EnquiryResponse, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id = $1`

	enquiry, err := scanEnquiry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrEnquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	return enquiry, nil
}

// ListEnquiries returns the triage queue, newest first, optionally narrowed
// to one status.
func (r *Repository) ListEnquiries(ctx context.Context, status string) ([]EnquiryResponse, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries`

	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []EnquiryResponse
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, *enquiry)
	}

	return enquiries, rows.Err()
}

// ListRecent returns the n most recent enquiries for the admin overview.
func (r *Repository) ListRecent(ctx context.Context, n int) ([]EnquiryResponse, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []EnquiryResponse
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, *enquiry)
	}

	return enquiries, rows.Err()
}

// UpdateStatus performs a partial update touching only the status column.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE enquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update enquiry status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

// CountEnquiries returns the total number of enquiries.
func (r *Repository) CountEnquiries(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enquiries`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnquiry(row rowScanner) (*EnquiryResponse, error) {
	var e EnquiryResponse
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Subject, &e.Message, &e.Status, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

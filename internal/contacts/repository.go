package contacts

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

// ListContacts returns every hospital contact point, ordered by department.
func (r *Repository) ListContacts(ctx context.Context) ([]ContactResponse, error) {
	query := `
		SELECT id, department, COALESCE(phone, ''), COALESCE(email, ''),
			COALESCE(address, ''), COALESCE(hours, '')
		FROM hospital_contacts
		ORDER BY department ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []ContactResponse
	for rows.Next() {
		var c ContactResponse
		if err := rows.Scan(&c.ID, &c.Department, &c.Phone, &c.Email, &c.Address, &c.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

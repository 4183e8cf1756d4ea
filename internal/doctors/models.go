package doctors

import (
	"time"

	"github.com/HealHub-Care/hospital-service/internal/pagination"
)

// DoctorResponse is the single normalized doctor shape; downstream views
// never see raw rows.
type DoctorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Specialty   string    `json:"specialty"`
	Rating      float64   `json:"rating"` // 0..5, enforced by the doctors table
	ReviewCount int       `json:"review_count"`
	Experience  string    `json:"experience"` // years, free text as stored
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// DoctorSuccessResponse wraps a single doctor
type DoctorSuccessResponse struct {
	Success bool            `json:"success"`
	Doctor  *DoctorResponse `json:"doctor,omitempty"`
}

// DoctorListResponse wraps the directory listing
type DoctorListResponse struct {
	Success     bool             `json:"success"`
	Doctors     []DoctorResponse `json:"doctors"`
	Specialties []string         `json:"specialties,omitempty"`
	Meta        pagination.Meta  `json:"meta"`
}

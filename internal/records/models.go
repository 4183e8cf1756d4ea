package records

import "time"

// RecordResponse is a medical record entry with the attending doctor joined
// in. Records are written by clinical systems upstream; this service only
// reads them.
type RecordResponse struct {
	ID              string    `json:"id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty"`
	RecordDate      string    `json:"record_date"` // YYYY-MM-DD
	Diagnosis       string    `json:"diagnosis"`
	Treatment       string    `json:"treatment,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecordListResponse wraps a medical record list
type RecordListResponse struct {
	Success bool             `json:"success"`
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

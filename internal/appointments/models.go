package appointments

import "time"

// Appointment status values. The booking form only ever creates "upcoming",
// the cancel action is the single transition exposed to patients, and the
// worker job owns the administrative move to "completed".
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists every appointment status bucket.
var Statuses = []string{StatusUpcoming, StatusCompleted, StatusCancelled}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	return s == StatusUpcoming || s == StatusCompleted || s == StatusCancelled
}

// BookAppointmentRequest represents the booking form submission. The tags
// mirror the form's declared validation; requests are rejected before any
// database work.
type BookAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	PatientName     string `json:"patient_name" validate:"required,min=2"`
	PatientEmail    string `json:"patient_email" validate:"required,email"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD, as entered
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason"`
	Location        string `json:"location" validate:"required,min=2"`
}

// AppointmentResponse is the normalized appointment shape with the doctor
// joined in; downstream views never see raw rows.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty"`
	DoctorImageURL  string    `json:"doctor_image_url,omitempty"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	AppointmentDate string    `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time"`
	Location        string    `json:"location"`
	Reason          string    `json:"reason,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// StatusCounts holds the per-bucket tab counts
type StatusCounts struct {
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// AppointmentSuccessResponse wraps a single appointment
type AppointmentSuccessResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

// AppointmentListResponse wraps a patient's appointment list
type AppointmentListResponse struct {
	Success      bool                  `json:"success"`
	Appointments []AppointmentResponse `json:"appointments"`
	Counts       StatusCounts          `json:"counts"`
	Total        int                   `json:"total"`
}

// FilterByStatus returns the appointments in the given status bucket.
func FilterByStatus(appointments []AppointmentResponse, status string) []AppointmentResponse {
	var filtered []AppointmentResponse
	for _, a := range appointments {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// CountByStatus computes the tab counts for a list of appointments.
func CountByStatus(appointments []AppointmentResponse) StatusCounts {
	var counts StatusCounts
	for _, a := range appointments {
		switch a.Status {
		case StatusUpcoming:
			counts.Upcoming++
		case StatusCompleted:
			counts.Completed++
		case StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

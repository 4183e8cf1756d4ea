package enquiries

import "time"

// Enquiry triage states. New submissions always start as "new"; operators
// move them through "in-progress" to "completed" (any transition within the
// set is allowed, including back to an earlier state).
const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Statuses lists every enquiry triage state.
var Statuses = []string{StatusNew, StatusInProgress, StatusCompleted}

// ValidStatus reports whether s is a known triage state.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusInProgress || s == StatusCompleted
}

// CreateEnquiryRequest represents the public contact-form submission
type CreateEnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required,min=2"`
	Message string `json:"message" validate:"required,min=10"`
}

// UpdateStatusRequest represents an operator's triage action
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// EnquiryResponse is the enquiry shape returned by the API
type EnquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// EnquirySuccessResponse wraps a single enquiry
type EnquirySuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Enquiry *EnquiryResponse `json:"enquiry,omitempty"`
}

// EnquiryListResponse wraps the triage queue
type EnquiryListResponse struct {
	Success   bool              `json:"success"`
	Enquiries []EnquiryResponse `json:"enquiries"`
	Total     int               `json:"total"`
}

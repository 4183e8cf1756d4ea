package messaging

import (
	"fmt"
	"time"
)

// Event routing keys as constants
const (
	// Appointment events
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"

	// Enquiry events
	EventEnquiryCreated       = "enquiry.created"
	EventEnquiryStatusChanged = "enquiry.status_changed"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// AppointmentBookedEvent represents a new booking
type AppointmentBookedEvent struct {
	BaseEvent
	Data AppointmentBookedData `json:"data"`
}

type AppointmentBookedData struct {
	AppointmentID   string    `json:"appointment_id"`
	DoctorID        string    `json:"doctor_id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentCancelledEvent represents a patient-initiated cancellation
type AppointmentCancelledEvent struct {
	BaseEvent
	Data AppointmentCancelledData `json:"data"`
}

type AppointmentCancelledData struct {
	AppointmentID string    `json:"appointment_id"`
	PatientEmail  string    `json:"patient_email"`
	CancelledAt   time.Time `json:"cancelled_at"`
}

// AppointmentCompletedEvent represents the administrative upcoming->completed
// transition performed by the worker job
type AppointmentCompletedEvent struct {
	BaseEvent
	Data AppointmentCompletedData `json:"data"`
}

type AppointmentCompletedData struct {
	AppointmentID   string    `json:"appointment_id"`
	PatientEmail    string    `json:"patient_email"`
	AppointmentDate string    `json:"appointment_date"`
	CompletedAt     time.Time `json:"completed_at"`
}

// EnquiryCreatedEvent represents a new contact-form enquiry
type EnquiryCreatedEvent struct {
	BaseEvent
	Data EnquiryCreatedData `json:"data"`
}

type EnquiryCreatedData struct {
	EnquiryID string    `json:"enquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// EnquiryStatusChangedEvent represents an operator triaging an enquiry
type EnquiryStatusChangedEvent struct {
	BaseEvent
	Data EnquiryStatusChangedData `json:"data"`
}

type EnquiryStatusChangedData struct {
	EnquiryID string    `json:"enquiry_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     fmt.Sprintf("%d", time.Now().UnixNano()),
		Timestamp:   time.Now().UTC(),
		ServiceName: "hospital-service",
	}
}

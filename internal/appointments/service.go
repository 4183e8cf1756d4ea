package appointments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/HealHub-Care/hospital-service/internal/cache"
	"github.com/HealHub-Care/hospital-service/internal/messaging"
	"github.com/HealHub-Care/hospital-service/internal/notify"
	"github.com/HealHub-Care/hospital-service/internal/telemetry"
)

var validate = validator.New()

// Service implements appointment booking and lifecycle management.
// Events and mail are best-effort: the booking stands even when the
// broker or SMTP relay is down.
type Service struct {
	repo      RepositoryInterface
	cache     *cache.Store
	publisher messaging.PublisherInterface
	mailer    notify.MailerInterface
	metrics   *telemetry.Metrics
}

func NewService(repo RepositoryInterface, store *cache.Store, publisher messaging.PublisherInterface, mailer notify.MailerInterface, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:      repo,
		cache:     store,
		publisher: publisher,
		mailer:    mailer,
		metrics:   metrics,
	}
}

// BookAppointment validates the booking request, stores the appointment as
// upcoming, and notifies downstream consumers.
func (s *Service) BookAppointment(ctx context.Context, req *BookAppointmentRequest) (*AppointmentResponse, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	appointment, err := s.repo.CreateAppointment(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.PatientAppointmentsKey(appointment.PatientEmail))

	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, "booked")
	}

	if s.publisher != nil {
		event := messaging.AppointmentBookedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentBooked),
			Data: messaging.AppointmentBookedData{
				AppointmentID:   appointment.ID,
				DoctorID:        appointment.DoctorID,
				PatientName:     appointment.PatientName,
				PatientEmail:    appointment.PatientEmail,
				AppointmentDate: appointment.AppointmentDate,
				AppointmentTime: appointment.AppointmentTime,
				Location:        appointment.Location,
				CreatedAt:       appointment.CreatedAt,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventAppointmentBooked, event); err != nil {
			log.Printf("Failed to publish appointment.booked event: %v", err)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendBookingConfirmation(
			appointment.PatientEmail, appointment.PatientName, appointment.DoctorName,
			appointment.AppointmentDate, appointment.AppointmentTime, appointment.Location,
		); err != nil {
			log.Printf("Failed to send booking confirmation to %s: %v", appointment.PatientEmail, err)
		}
	}

	return appointment, nil
}

// ListAppointments returns the patient's appointments with per-status tab
// counts. Only the unfiltered list is cached; status filters are served by
// the repository directly.
func (s *Service) ListAppointments(ctx context.Context, email, status string) (*AppointmentListResponse, error) {
	if status != "" && !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if status == "" {
		key := cache.PatientAppointmentsKey(email)

		var cached AppointmentListResponse
		if s.cache.GetJSON(ctx, key, &cached) {
			return &cached, nil
		}

		response, err := s.buildList(ctx, email, "")
		if err != nil {
			return nil, err
		}

		s.cache.SetJSON(ctx, key, response, cache.AppointmentsTTL)
		return response, nil
	}

	return s.buildList(ctx, email, status)
}

func (s *Service) buildList(ctx context.Context, email, status string) (*AppointmentListResponse, error) {
	appointments, err := s.repo.ListByPatient(ctx, email, status)
	if err != nil {
		return nil, err
	}

	// Tab counts always cover the whole list, even when one bucket is shown.
	counted := appointments
	if status != "" {
		counted, err = s.repo.ListByPatient(ctx, email, "")
		if err != nil {
			return nil, err
		}
	}

	return &AppointmentListResponse{
		Success:      true,
		Appointments: appointments,
		Counts:       CountByStatus(counted),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment marks an appointment cancelled. The update touches only
// the status column; date, time and location stay as booked.
func (s *Service) CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	appointment.Status = StatusCancelled

	s.cache.Invalidate(ctx, cache.PatientAppointmentsKey(appointment.PatientEmail))

	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, "cancelled")
	}

	if s.publisher != nil {
		event := messaging.AppointmentCancelledEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentCancelled),
			Data: messaging.AppointmentCancelledData{
				AppointmentID: appointment.ID,
				PatientEmail:  appointment.PatientEmail,
				CancelledAt:   time.Now().UTC(),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventAppointmentCancelled, event); err != nil {
			log.Printf("Failed to publish appointment.cancelled event: %v", err)
		}
	}

	return appointment, nil
}

// RescheduleAppointment acknowledges a reschedule request without mutating
// the record. Actual rescheduling is handled out of band by the front desk.
// TODO: replace with a real date/time update once the front-desk flow moves
// into this service.
func (s *Service) RescheduleAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// validateBooking applies the booking form rules and rejects past dates.
func validateBooking(req *BookAppointmentRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return fmt.Errorf("%w: %s", ErrValidation, bookingMessage(fieldErrors[0]))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return fmt.Errorf("%w: Please select a valid date", ErrValidation)
	}

	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return fmt.Errorf("%w: Appointment date cannot be in the past", ErrValidation)
	}

	return nil
}

func bookingMessage(fieldError validator.FieldError) string {
	switch fieldError.Field() {
	case "DoctorID":
		return "Please select a doctor"
	case "PatientName":
		return "Name must be at least 2 characters"
	case "PatientEmail":
		return "Please enter a valid email address"
	case "AppointmentDate":
		return "Please select a valid date"
	case "AppointmentTime":
		return "Please select a time slot"
	case "Location":
		return "Location must be at least 2 characters"
	}
	return fieldError.Error()
}

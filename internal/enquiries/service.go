package enquiries

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/HealHub-Care/hospital-service/internal/messaging"
	"github.com/HealHub-Care/hospital-service/internal/notify"
	"github.com/HealHub-Care/hospital-service/internal/telemetry"
)

var validate = validator.New()

// Service implements the enquiry triage queue. The queue is read rarely and
// changes on every triage action, so it is never cached.
type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	mailer    notify.MailerInterface
	metrics   *telemetry.Metrics
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, mailer notify.MailerInterface, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		mailer:    mailer,
		metrics:   metrics,
	}
}

// CreateEnquiry validates and stores a public contact-form submission.
func (s *Service) CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error) {
	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrValidation, enquiryMessage(fieldErrors[0]))
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	enquiry, err := s.repo.CreateEnquiry(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordEnquiryOperation(ctx, "created")
	}

	if s.publisher != nil {
		event := messaging.EnquiryCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventEnquiryCreated),
			Data: messaging.EnquiryCreatedData{
				EnquiryID: enquiry.ID,
				Name:      enquiry.Name,
				Email:     enquiry.Email,
				CreatedAt: enquiry.CreatedAt,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventEnquiryCreated, event); err != nil {
			log.Printf("Failed to publish enquiry.created event: %v", err)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendEnquiryAcknowledgement(enquiry.Email, enquiry.Name); err != nil {
			log.Printf("Failed to send enquiry acknowledgement to %s: %v", enquiry.Email, err)
		}
	}

	return enquiry, nil
}

// ListEnquiries returns the triage queue, optionally filtered by status.
func (s *Service) ListEnquiries(ctx context.Context, status string) (*EnquiryListResponse, error) {
	if status != "" && !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	enquiries, err := s.repo.ListEnquiries(ctx, status)
	if err != nil {
		return nil, err
	}

	return &EnquiryListResponse{
		Success:   true,
		Enquiries: enquiries,
		Total:     len(enquiries),
	}, nil
}

// UpdateStatus moves an enquiry to the given triage state. Setting the
// current state again is a no-op that still succeeds.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*EnquiryResponse, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	enquiry, err := s.repo.GetEnquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := enquiry.Status
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	enquiry.Status = status

	if s.metrics != nil {
		s.metrics.RecordEnquiryOperation(ctx, "status_changed")
	}

	if s.publisher != nil && oldStatus != status {
		event := messaging.EnquiryStatusChangedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventEnquiryStatusChanged),
			Data: messaging.EnquiryStatusChangedData{
				EnquiryID: enquiry.ID,
				OldStatus: oldStatus,
				NewStatus: status,
				ChangedAt: time.Now().UTC(),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventEnquiryStatusChanged, event); err != nil {
			log.Printf("Failed to publish enquiry.status_changed event: %v", err)
		}
	}

	return enquiry, nil
}

// ListRecent returns the n most recent enquiries.
func (s *Service) ListRecent(ctx context.Context, n int) ([]EnquiryResponse, error) {
	return s.repo.ListRecent(ctx, n)
}

func enquiryMessage(fieldError validator.FieldError) string {
	switch fieldError.Field() {
	case "Name":
		return "Name must be at least 2 characters"
	case "Email":
		return "Please enter a valid email address"
	case "Subject":
		return "Subject must be at least 2 characters"
	case "Message":
		return "Message must be at least 10 characters"
	}
	return fieldError.Error()
}

package appointments

import (
	"context"
	"log"
	"time"

	"github.com/HealHub-Care/hospital-service/internal/messaging"
)

// CompletionService moves upcoming appointments whose date has passed to
// completed. It runs from the worker on a schedule, never from a request.
type CompletionService struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewCompletionService(repo RepositoryInterface, publisher messaging.PublisherInterface) *CompletionService {
	return &CompletionService{repo: repo, publisher: publisher}
}

// Run completes every upcoming appointment dated before today and returns
// the number of rows affected.
func (s *CompletionService) Run(ctx context.Context) (int, error) {
	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	completed, err := s.repo.CompletePastAppointments(ctx, today)
	if err != nil {
		return 0, err
	}

	for _, appointment := range completed {
		if s.publisher == nil {
			continue
		}
		event := messaging.AppointmentCompletedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentCompleted),
			Data: messaging.AppointmentCompletedData{
				AppointmentID:   appointment.ID,
				PatientEmail:    appointment.PatientEmail,
				AppointmentDate: appointment.AppointmentDate,
				CompletedAt:     time.Now().UTC(),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventAppointmentCompleted, event); err != nil {
			log.Printf("Failed to publish appointment.completed event for %s: %v", appointment.ID, err)
		}
	}

	if len(completed) > 0 {
		log.Printf("Completed %d past appointments", len(completed))
	}

	return len(completed), nil
}

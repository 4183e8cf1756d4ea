package appointments

import (
	"context"
	"time"
)

// RepositoryInterface defines the contract for appointment data access
type RepositoryInterface interface {
	CreateAppointment(ctx context.Context, req *BookAppointmentRequest) (*AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error)
	ListByPatient(ctx context.Context, email, status string) ([]AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountAppointments(ctx context.Context) (int, error)
	ListAllAppointments(ctx context.Context) ([]AppointmentResponse, error)
	CompletePastAppointments(ctx context.Context, before time.Time) ([]AppointmentResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

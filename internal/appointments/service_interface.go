package appointments

import "context"

// ServiceInterface defines the contract for appointment operations
type ServiceInterface interface {
	BookAppointment(ctx context.Context, req *BookAppointmentRequest) (*AppointmentResponse, error)
	ListAppointments(ctx context.Context, email, status string) (*AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, id string) (*AppointmentResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

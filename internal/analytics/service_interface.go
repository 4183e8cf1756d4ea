package analytics

import "context"

// ServiceInterface defines the contract for the admin dashboard views
type ServiceInterface interface {
	Overview(ctx context.Context) (*OverviewResponse, error)
	AppointmentAnalytics(ctx context.Context) (*AppointmentAnalyticsResponse, error)
	DoctorAnalytics(ctx context.Context) (*DoctorAnalyticsResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

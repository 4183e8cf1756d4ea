package services

import "context"

// ServiceInterface defines the contract for the services catalog
type ServiceInterface interface {
	ListServices(ctx context.Context) (*ServiceListResponse, error)
	GetService(ctx context.Context, slug string) (*ServiceDetailResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

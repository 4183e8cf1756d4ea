package records

import "context"

// ServiceInterface defines the contract for medical record viewing
type ServiceInterface interface {
	ListRecords(ctx context.Context, email string, admin bool) (*RecordListResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

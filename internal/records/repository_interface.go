package records

import "context"

// RepositoryInterface defines the contract for medical record access
type RepositoryInterface interface {
	ListRecords(ctx context.Context) ([]RecordResponse, error)
	ListByPatient(ctx context.Context, email string) ([]RecordResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

package doctors

import "context"

// RepositoryInterface defines the contract for doctor data access
type RepositoryInterface interface {
	ListDoctors(ctx context.Context, specialty, search string, limit, offset int) ([]DoctorResponse, int, error)
	ListAllDoctors(ctx context.Context) ([]DoctorResponse, error)
	GetDoctor(ctx context.Context, id string) (*DoctorResponse, error)
	ListSpecialties(ctx context.Context) ([]string, error)
	CountDoctors(ctx context.Context) (int, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

package doctors

import (
	"context"

	"github.com/HealHub-Care/hospital-service/internal/pagination"
)

// ServiceInterface defines the contract for the doctors directory
type ServiceInterface interface {
	ListDoctors(ctx context.Context, specialty string, params pagination.Params) (*DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*DoctorResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

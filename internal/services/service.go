package services

import (
	"context"
	"fmt"

	"github.com/HealHub-Care/hospital-service/internal/doctors"
)

// DoctorLister is the slice of the doctors repository the catalog needs.
type DoctorLister interface {
	ListDoctors(ctx context.Context, specialty, search string, limit, offset int) ([]doctors.DoctorResponse, int, error)
}

// Service serves the hospital services catalog and joins each service line
// with the doctors practicing its specialty.
type Service struct {
	doctors DoctorLister
}

func NewService(doctorLister DoctorLister) *Service {
	return &Service{doctors: doctorLister}
}

// ListServices returns the full catalog.
func (s *Service) ListServices(ctx context.Context) (*ServiceListResponse, error) {
	return &ServiceListResponse{
		Success:  true,
		Services: Catalog,
	}, nil
}

// GetService returns one catalog entry with its practicing doctors.
func (s *Service) GetService(ctx context.Context, slug string) (*ServiceDetailResponse, error) {
	entry, ok := FindBySlug(slug)
	if !ok {
		return nil, ErrServiceNotFound
	}

	practicing, _, err := s.doctors.ListDoctors(ctx, entry.Specialty, "", serviceDoctorLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors for service %s: %w", slug, err)
	}

	return &ServiceDetailResponse{
		Success: true,
		Service: entry,
		Doctors: practicing,
	}, nil
}

// serviceDoctorLimit caps how many doctors a service detail page shows.
const serviceDoctorLimit = 50

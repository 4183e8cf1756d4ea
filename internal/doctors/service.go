package doctors

import (
	"context"
	"fmt"

	"github.com/HealHub-Care/hospital-service/internal/cache"
	"github.com/HealHub-Care/hospital-service/internal/pagination"
)

// Service implements the doctors directory. Reads are served from the query
// cache inside their freshness window; the directory has no in-app mutation,
// so nothing ever invalidates these keys.
type Service struct {
	repo  RepositoryInterface
	cache *cache.Store
}

func NewService(repo RepositoryInterface, store *cache.Store) *Service {
	return &Service{repo: repo, cache: store}
}

// ListDoctors returns one directory page for the given filter set.
func (s *Service) ListDoctors(ctx context.Context, specialty string, params pagination.Params) (*DoctorListResponse, error) {
	params.Validate()

	key := cache.DoctorListKey(specialty, params.Search, params.Page)

	var cached DoctorListResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	doctors, total, err := s.repo.ListDoctors(ctx, specialty, params.Search, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	response := &DoctorListResponse{
		Success:     true,
		Doctors:     doctors,
		Specialties: specialties,
		Meta:        params.CalculateMeta(total),
	}

	s.cache.SetJSON(ctx, key, response, cache.DoctorsTTL)

	return response, nil
}

// GetDoctor returns a single doctor profile.
func (s *Service) GetDoctor(ctx context.Context, id string) (*DoctorResponse, error) {
	key := cache.DoctorKey(id)

	var cached DoctorResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	doctor, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, doctor, cache.DoctorsTTL)

	return doctor, nil
}

package contacts

import (
	"context"

	"github.com/HealHub-Care/hospital-service/internal/cache"
)

// Service serves the hospital contact directory. Contact details change a
// few times a year, so the whole list sits under one long-lived cache key.
type Service struct {
	repo  RepositoryInterface
	cache *cache.Store
}

func NewService(repo RepositoryInterface, store *cache.Store) *Service {
	return &Service{repo: repo, cache: store}
}

// ListContacts returns every hospital contact point.
func (s *Service) ListContacts(ctx context.Context) (*ContactListResponse, error) {
	key := cache.ContactsKey()

	var cached ContactListResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	contacts, err := s.repo.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	response := &ContactListResponse{
		Success:  true,
		Contacts: contacts,
	}

	s.cache.SetJSON(ctx, key, response, cache.ContactsTTL)

	return response, nil
}

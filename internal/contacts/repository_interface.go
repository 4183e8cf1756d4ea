package contacts

import "context"

// RepositoryInterface defines the contract for contact data access
type RepositoryInterface interface {
	ListContacts(ctx context.Context) ([]ContactResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

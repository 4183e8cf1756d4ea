package contacts

import "context"

// ServiceInterface defines the contract for the contact directory
type ServiceInterface interface {
	ListContacts(ctx context.Context) (*ContactListResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

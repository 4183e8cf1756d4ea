package enquiries

import "context"

// RepositoryInterface defines the contract for enquiry data access
type RepositoryInterface interface {
	CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error)
	GetEnquiry(ctx context.Context, id string) (*EnquiryResponse, error)
	ListEnquiries(ctx context.Context, status string) ([]EnquiryResponse, error)
	ListRecent(ctx context.Context, n int) ([]EnquiryResponse, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountEnquiries(ctx context.Context) (int, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

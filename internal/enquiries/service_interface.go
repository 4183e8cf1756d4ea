package enquiries

import "context"

// ServiceInterface defines the contract for enquiry operations
type ServiceInterface interface {
	CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error)
	ListEnquiries(ctx context.Context, status string) (*EnquiryListResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*EnquiryResponse, error)
	ListRecent(ctx context.Context, n int) ([]EnquiryResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

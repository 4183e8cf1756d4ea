package enquiries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HealHub-Care/hospital-service/internal/messaging"
	"github.com/HealHub-Care/hospital-service/internal/testutil"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	createEnquiryFunc  func(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error)
	getEnquiryFunc     func(ctx context.Context, id string) (*EnquiryResponse, error)
	listEnquiriesFunc  func(ctx context.Context, status string) ([]EnquiryResponse, error)
	listRecentFunc     func(ctx context.Context, n int) ([]EnquiryResponse, error)
	updateStatusFunc   func(ctx context.Context, id, status string) error
	countEnquiriesFunc func(ctx context.Context) (int, error)
}

func (m *mockRepository) CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error) {
	if m.createEnquiryFunc != nil {
		return m.createEnquiryFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) GetEnquiry(ctx context.Context, id string) (*EnquiryResponse, error) {
	if m.getEnquiryFunc != nil {
		return m.getEnquiryFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListEnquiries(ctx context.Context, status string) ([]EnquiryResponse, error) {
	if m.listEnquiriesFunc != nil {
		return m.listEnquiriesFunc(ctx, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListRecent(ctx context.Context, n int) ([]EnquiryResponse, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, n)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return errors.New("not implemented")
}

func (m *mockRepository) CountEnquiries(ctx context.Context) (int, error) {
	if m.countEnquiriesFunc != nil {
		return m.countEnquiriesFunc(ctx)
	}
	return 0, errors.New("not implemented")
}

func validEnquiry() *CreateEnquiryRequest {
	return &CreateEnquiryRequest{
		Name:    "John Carter",
		Email:   "john@example.com",
		Subject: "Visiting hours",
		Message: "What are the visiting hours for the cardiology ward?",
	}
}

func TestCreateEnquiry_Success(t *testing.T) {
	repo := &mockRepository{
		createEnquiryFunc: func(ctx context.Context, req *CreateEnquiryRequest) (*EnquiryResponse, error) {
			return &EnquiryResponse{
				ID:        "enq-1",
				Name:      req.Name,
				Email:     req.Email,
				Subject:   req.Subject,
				Message:   req.Message,
				Status:    StatusNew,
				CreatedAt: time.Now(),
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()
	mailer := testutil.NewMockMailer()
	service := NewService(repo, publisher, mailer, nil)

	enquiry, err := service.CreateEnquiry(context.Background(), validEnquiry())
	if err != nil {
		t.Fatalf("CreateEnquiry failed: %v", err)
	}

	if enquiry.Status != StatusNew {
		t.Errorf("New enquiries must start as %q, got %q", StatusNew, enquiry.Status)
	}
	publisher.AssertEventPublished(t, messaging.EventEnquiryCreated)
	mailer.AssertSent(t, "enquiry_acknowledgement", "john@example.com")
}

func TestCreateEnquiry_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *CreateEnquiryRequest)
	}{
		{"short name", func(r *CreateEnquiryRequest) { r.Name = "J" }},
		{"invalid email", func(r *CreateEnquiryRequest) { r.Email = "nope" }},
		{"missing subject", func(r *CreateEnquiryRequest) { r.Subject = "" }},
		{"short message", func(r *CreateEnquiryRequest) { r.Message = "hi" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := NewService(&mockRepository{}, nil, nil, nil)

			req := validEnquiry()
			tc.mutate(req)

			_, err := service.CreateEnquiry(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil, nil)

	_, err := service.UpdateStatus(context.Background(), "enq-1", "resolved")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_AnyTransitionWithinSet(t *testing.T) {
	// Every ordered pair of triage states is a legal transition.
	for _, from := range Statuses {
		for _, to := range Statuses {
			repo := &mockRepository{
				getEnquiryFunc: func(ctx context.Context, id string) (*EnquiryResponse, error) {
					return &EnquiryResponse{ID: id, Email: "john@example.com", Status: from}, nil
				},
				updateStatusFunc: func(ctx context.Context, id, status string) error {
					return nil
				},
			}
			service := NewService(repo, nil, nil, nil)

			enquiry, err := service.UpdateStatus(context.Background(), "enq-1", to)
			if err != nil {
				t.Errorf("Transition %s -> %s failed: %v", from, to, err)
				continue
			}
			if enquiry.Status != to {
				t.Errorf("Transition %s -> %s: got status %q", from, to, enquiry.Status)
			}
		}
	}
}

func TestUpdateStatus_SameStatusPublishesNoEvent(t *testing.T) {
	repo := &mockRepository{
		getEnquiryFunc: func(ctx context.Context, id string) (*EnquiryResponse, error) {
			return &EnquiryResponse{ID: id, Status: StatusInProgress}, nil
		},
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			return nil
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(repo, publisher, nil, nil)

	if _, err := service.UpdateStatus(context.Background(), "enq-1", StatusInProgress); err != nil {
		t.Fatalf("Setting the current status must succeed: %v", err)
	}
	publisher.AssertEventNotPublished(t, messaging.EventEnquiryStatusChanged)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockRepository{
		getEnquiryFunc: func(ctx context.Context, id string) (*EnquiryResponse, error) {
			return nil, ErrEnquiryNotFound
		},
	}
	service := NewService(repo, nil, nil, nil)

	_, err := service.UpdateStatus(context.Background(), "missing", StatusCompleted)
	if !errors.Is(err, ErrEnquiryNotFound) {
		t.Errorf("Expected ErrEnquiryNotFound, got %v", err)
	}
}

func TestListEnquiries_InvalidStatusFilter(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil, nil)

	_, err := service.ListEnquiries(context.Background(), "open")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

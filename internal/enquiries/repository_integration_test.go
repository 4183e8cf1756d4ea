//go:build integration

package enquiries

import (
	"context"
	"errors"
	"testing"

	"github.com/HealHub-Care/hospital-service/internal/testutil"
	"github.com/google/uuid"
)

func enquiryFor(email, subject string) *CreateEnquiryRequest {
	return &CreateEnquiryRequest{
		Name:    "Jane Smith",
		Email:   email,
		Phone:   "+1 555 0100",
		Subject: subject,
		Message: "I would like to know your visiting hours.",
	}
}

// TestRepositoryCreateEnquiry_Integration tests storing a contact-form submission
func TestRepositoryCreateEnquiry_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	enquiry, err := repo.CreateEnquiry(context.Background(), enquiryFor("jane@example.com", "Visiting hours"))
	if err != nil {
		t.Fatalf("CreateEnquiry failed: %v", err)
	}

	if enquiry.ID == "" {
		t.Error("Expected enquiry ID to be set")
	}
	if enquiry.Status != StatusNew {
		t.Errorf("Expected new enquiries to start as %q, got %q", StatusNew, enquiry.Status)
	}
	if enquiry.Phone != "+1 555 0100" {
		t.Errorf("Expected phone to round-trip, got %q", enquiry.Phone)
	}
}

// TestRepositoryCreateEnquiry_EmptyPhone_Integration tests the optional phone column
func TestRepositoryCreateEnquiry_EmptyPhone_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	req := enquiryFor("nophone@example.com", "No phone")
	req.Phone = ""

	enquiry, err := repo.CreateEnquiry(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateEnquiry failed: %v", err)
	}
	if enquiry.Phone != "" {
		t.Errorf("Expected empty phone to stay empty, got %q", enquiry.Phone)
	}
}

// TestRepositoryListEnquiries_Integration tests ordering and the status filter
func TestRepositoryListEnquiries_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	first, err := repo.CreateEnquiry(context.Background(), enquiryFor("a@example.com", "First"))
	if err != nil {
		t.Fatalf("CreateEnquiry failed: %v", err)
	}
	if _, err := repo.CreateEnquiry(context.Background(), enquiryFor("b@example.com", "Second")); err != nil {
		t.Fatalf("CreateEnquiry failed: %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), first.ID, StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	all, err := repo.ListEnquiries(context.Background(), "")
	if err != nil {
		t.Fatalf("ListEnquiries failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 enquiries, got %d", len(all))
	}

	inProgress, err := repo.ListEnquiries(context.Background(), StatusInProgress)
	if err != nil {
		t.Fatalf("ListEnquiries with status failed: %v", err)
	}
	if len(inProgress) != 1 || inProgress[0].ID != first.ID {
		t.Errorf("Expected only the in-progress enquiry, got %d rows", len(inProgress))
	}
}

// TestRepositoryListRecent_Integration tests the overview limit
func TestRepositoryListRecent_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	for i := 0; i < 4; i++ {
		if _, err := repo.CreateEnquiry(context.Background(), enquiryFor("recent@example.com", "Recent")); err != nil {
			t.Fatalf("CreateEnquiry %d failed: %v", i, err)
		}
	}

	recent, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected the limit to apply, got %d rows", len(recent))
	}

	total, err := repo.CountEnquiries(context.Background())
	if err != nil {
		t.Fatalf("CountEnquiries failed: %v", err)
	}
	if total != 4 {
		t.Errorf("Expected 4 enquiries total, got %d", total)
	}
}

// TestRepositoryUpdateStatus_NotFound_Integration tests the missing-row error
func TestRepositoryUpdateStatus_NotFound_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	err := repo.UpdateStatus(context.Background(), uuid.New().String(), StatusCompleted)
	if !errors.Is(err, ErrEnquiryNotFound) {
		t.Errorf("Expected ErrEnquiryNotFound, got %v", err)
	}
}

//go:build integration

package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HealHub-Care/hospital-service/internal/testutil"
	"github.com/google/uuid"
)

func bookingFor(doctorID, email, date string) *BookAppointmentRequest {
	return &BookAppointmentRequest{
		DoctorID:        doctorID,
		PatientName:     "John Doe",
		PatientEmail:    email,
		AppointmentDate: date,
		AppointmentTime: "10:30",
		Location:        "Main Hospital",
		Reason:          "Routine check-up",
	}
}

// TestRepositoryCreateAppointment_Integration tests booking with the doctor joined in
func TestRepositoryCreateAppointment_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	doctorID := testutil.CreateTestDoctor(t, db, "Dr. Adams", "Cardiology")
	repo := NewRepository(db)

	appointment, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "john@example.com", "2030-06-15"))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	if appointment.ID == "" {
		t.Error("Expected appointment ID to be set")
	}
	if appointment.Status != StatusUpcoming {
		t.Errorf("Expected status upcoming, got %s", appointment.Status)
	}
	if appointment.DoctorName != "Dr. Adams" {
		t.Errorf("Expected joined doctor name, got %q", appointment.DoctorName)
	}
	if appointment.AppointmentDate != "2030-06-15" {
		t.Errorf("Expected date 2030-06-15, got %q", appointment.AppointmentDate)
	}
}

// TestRepositoryListByPatient_Integration tests the email scoping and status filter
func TestRepositoryListByPatient_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	doctorID := testutil.CreateTestDoctor(t, db, "Dr. Banks", "Neurology")
	repo := NewRepository(db)

	first, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "alice@example.com", "2030-06-15"))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if _, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "alice@example.com", "2030-06-20")); err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if _, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "bob@example.com", "2030-06-18")); err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	// Case-insensitive email match, newest date first
	appointments, err := repo.ListByPatient(context.Background(), "ALICE@example.com", "")
	if err != nil {
		t.Fatalf("ListByPatient failed: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("Expected 2 appointments for alice, got %d", len(appointments))
	}
	if appointments[0].AppointmentDate != "2030-06-20" {
		t.Errorf("Expected newest date first, got %s", appointments[0].AppointmentDate)
	}

	// Status filter narrows the list
	if err := repo.UpdateStatus(context.Background(), first.ID, StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	cancelled, err := repo.ListByPatient(context.Background(), "alice@example.com", StatusCancelled)
	if err != nil {
		t.Fatalf("ListByPatient with status failed: %v", err)
	}
	if len(cancelled) != 1 || cancelled[0].ID != first.ID {
		t.Errorf("Expected only the cancelled appointment, got %d rows", len(cancelled))
	}
}

// TestRepositoryUpdateStatus_NotFound_Integration tests the missing-row error
func TestRepositoryUpdateStatus_NotFound_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	err := repo.UpdateStatus(context.Background(), uuid.New().String(), StatusCancelled)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("Expected ErrAppointmentNotFound, got %v", err)
	}
}

// TestRepositoryCountByStatus_Integration tests the status breakdown
func TestRepositoryCountByStatus_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	doctorID := testutil.CreateTestDoctor(t, db, "Dr. Chen", "Pediatrics")
	repo := NewRepository(db)

	a1, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "count@example.com", "2030-07-01"))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if _, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "count@example.com", "2030-07-02")); err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), a1.ID, StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if counts[StatusUpcoming] != 1 {
		t.Errorf("Expected 1 upcoming, got %d", counts[StatusUpcoming])
	}
	if counts[StatusCancelled] != 1 {
		t.Errorf("Expected 1 cancelled, got %d", counts[StatusCancelled])
	}
}

// TestRepositoryCompletePastAppointments_Integration tests the nightly sweep
func TestRepositoryCompletePastAppointments_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	doctorID := testutil.CreateTestDoctor(t, db, "Dr. Diaz", "Dermatology")
	repo := NewRepository(db)

	past, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "sweep@example.com", "2020-01-10"))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	future, err := repo.CreateAppointment(context.Background(), bookingFor(doctorID, "sweep@example.com", "2030-01-10"))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	completed, err := repo.CompletePastAppointments(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("CompletePastAppointments failed: %v", err)
	}

	if len(completed) != 1 || completed[0].ID != past.ID {
		t.Fatalf("Expected only the past appointment to complete, got %d rows", len(completed))
	}

	stillUpcoming, err := repo.GetAppointment(context.Background(), future.ID)
	if err != nil {
		t.Fatalf("GetAppointment failed: %v", err)
	}
	if stillUpcoming.Status != StatusUpcoming {
		t.Errorf("Future appointment must stay upcoming, got %s", stillUpcoming.Status)
	}

	// A second sweep finds nothing to do
	again, err := repo.CompletePastAppointments(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("Second sweep failed: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("Expected idempotent sweep, got %d rows", len(again))
	}
}

// TestRepositoryGetAppointment_NotFound_Integration tests error handling for a missing id
func TestRepositoryGetAppointment_NotFound_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	defer testutil.CleanupTestDB(t, db)

	repo := NewRepository(db)

	_, err := repo.GetAppointment(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("Expected ErrAppointmentNotFound, got %v", err)
	}
}

package doctors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/HealHub-Care/hospital-service/internal/pagination"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	listDoctorsFunc func(ctx context.Context, specialty string, params pagination.Params) (*DoctorListResponse, error)
	getDoctorFunc   func(ctx context.Context, id string) (*DoctorResponse, error)
}

func (m *mockService) ListDoctors(ctx context.Context, specialty string, params pagination.Params) (*DoctorListResponse, error) {
	if m.listDoctorsFunc != nil {
		return m.listDoctorsFunc(ctx, specialty, params)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) GetDoctor(ctx context.Context, id string) (*DoctorResponse, error) {
	if m.getDoctorFunc != nil {
		return m.getDoctorFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func TestHandlerListDoctors_Success(t *testing.T) {
	mockSvc := &mockService{
		listDoctorsFunc: func(ctx context.Context, specialty string, params pagination.Params) (*DoctorListResponse, error) {
			if specialty != "Cardiology" {
				t.Errorf("Expected specialty filter, got %q", specialty)
			}
			if params.Search != "adams" {
				t.Errorf("Expected search filter, got %q", params.Search)
			}
			return &DoctorListResponse{Success: true}, nil
		},
	}
	handler := NewHandler(mockSvc)

	req := httptest.NewRequest("GET", "/doctors?specialty=Cardiology&search=adams", nil)
	w := httptest.NewRecorder()

	handler.ListDoctors(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandlerGetDoctor_NotFound(t *testing.T) {
	mockSvc := &mockService{
		getDoctorFunc: func(ctx context.Context, id string) (*DoctorResponse, error) {
			return nil, ErrDoctorNotFound
		},
	}
	handler := NewHandler(mockSvc)

	req := httptest.NewRequest("GET", "/doctors/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	w := httptest.NewRecorder()

	handler.GetDoctor(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "not_found" {
		t.Errorf("Expected not_found body, got %q", response["error"])
	}
}

func TestHandlerGetDoctor_Success(t *testing.T) {
	mockSvc := &mockService{
		getDoctorFunc: func(ctx context.Context, id string) (*DoctorResponse, error) {
			return &DoctorResponse{ID: id, Name: "Dr. Adams", Rating: 4.5}, nil
		},
	}
	handler := NewHandler(mockSvc)

	req := httptest.NewRequest("GET", "/doctors/doc-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "doc-1"})
	w := httptest.NewRecorder()

	handler.GetDoctor(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var response DoctorSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Doctor.Name != "Dr. Adams" {
		t.Errorf("Unexpected doctor: %+v", response.Doctor)
	}
}

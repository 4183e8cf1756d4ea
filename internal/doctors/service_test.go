package doctors

import (
	"context"
	"errors"
	"testing"

	"github.com/HealHub-Care/hospital-service/internal/pagination"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	listDoctorsFunc     func(ctx context.Context, specialty, search string, limit, offset int) ([]DoctorResponse, int, error)
	listAllDoctorsFunc  func(ctx context.Context) ([]DoctorResponse, error)
	getDoctorFunc       func(ctx context.Context, id string) (*DoctorResponse, error)
	listSpecialtiesFunc func(ctx context.Context) ([]string, error)
	countDoctorsFunc    func(ctx context.Context) (int, error)
}

func (m *mockRepository) ListDoctors(ctx context.Context, specialty, search string, limit, offset int) ([]DoctorResponse, int, error) {
	if m.listDoctorsFunc != nil {
		return m.listDoctorsFunc(ctx, specialty, search, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) ListAllDoctors(ctx context.Context) ([]DoctorResponse, error) {
	if m.listAllDoctorsFunc != nil {
		return m.listAllDoctorsFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) GetDoctor(ctx context.Context, id string) (*DoctorResponse, error) {
	if m.getDoctorFunc != nil {
		return m.getDoctorFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListSpecialties(ctx context.Context) ([]string, error) {
	if m.listSpecialtiesFunc != nil {
		return m.listSpecialtiesFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) CountDoctors(ctx context.Context) (int, error) {
	if m.countDoctorsFunc != nil {
		return m.countDoctorsFunc(ctx)
	}
	return 0, errors.New("not implemented")
}

func TestListDoctors_PassesFilters(t *testing.T) {
	var gotSpecialty, gotSearch string
	var gotLimit, gotOffset int
	repo := &mockRepository{
		listDoctorsFunc: func(ctx context.Context, specialty, search string, limit, offset int) ([]DoctorResponse, int, error) {
			gotSpecialty, gotSearch = specialty, search
			gotLimit, gotOffset = limit, offset
			return []DoctorResponse{{ID: "doc-1", Name: "Dr. Adams", Specialty: specialty}}, 1, nil
		},
		listSpecialtiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Cardiology", "Neurology"}, nil
		},
	}
	service := NewService(repo, nil)

	params := pagination.Params{Page: 2, Limit: 10, Search: "adams"}
	response, err := service.ListDoctors(context.Background(), "Cardiology", params)
	if err != nil {
		t.Fatalf("ListDoctors failed: %v", err)
	}

	if gotSpecialty != "Cardiology" || gotSearch != "adams" {
		t.Errorf("Filters not passed through: specialty=%q search=%q", gotSpecialty, gotSearch)
	}
	if gotLimit != 10 || gotOffset != 10 {
		t.Errorf("Expected limit 10 offset 10, got %d/%d", gotLimit, gotOffset)
	}
	if len(response.Specialties) != 2 {
		t.Errorf("Expected the specialty list in the response, got %v", response.Specialties)
	}
	if response.Meta.CurrentPage != 2 {
		t.Errorf("Expected page 2 in meta, got %d", response.Meta.CurrentPage)
	}
}

func TestGetDoctor_NotFound(t *testing.T) {
	repo := &mockRepository{
		getDoctorFunc: func(ctx context.Context, id string) (*DoctorResponse, error) {
			return nil, ErrDoctorNotFound
		},
	}
	service := NewService(repo, nil)

	_, err := service.GetDoctor(context.Background(), "missing")
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("Expected ErrDoctorNotFound, got %v", err)
	}
}

package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockKeycloak implements KeycloakInterface for testing
type mockKeycloak struct {
	createUserFunc    func(user KeycloakUser) (string, error)
	setPasswordFunc   func(userID string, password string, temporary bool) error
	getRoleFunc       func(roleName string) (*KeycloakRole, error)
	assignRoleFunc    func(userID string, role KeycloakRole) error
	deleteUserFunc    func(userID string) error
	passwordGrantFunc func(email, password string) (*TokenResponse, error)
}

func (m *mockKeycloak) CreateUser(user KeycloakUser) (string, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(user)
	}
	return "", errors.New("not implemented")
}

func (m *mockKeycloak) SetPassword(userID string, password string, temporary bool) error {
	if m.setPasswordFunc != nil {
		return m.setPasswordFunc(userID, password, temporary)
	}
	return errors.New("not implemented")
}

func (m *mockKeycloak) GetRole(roleName string) (*KeycloakRole, error) {
	if m.getRoleFunc != nil {
		return m.getRoleFunc(roleName)
	}
	return nil, errors.New("not implemented")
}

func (m *mockKeycloak) AssignRole(userID string, role KeycloakRole) error {
	if m.assignRoleFunc != nil {
		return m.assignRoleFunc(userID, role)
	}
	return errors.New("not implemented")
}

func (m *mockKeycloak) DeleteUser(userID string) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(userID)
	}
	return errors.New("not implemented")
}

func (m *mockKeycloak) PasswordGrant(email, password string) (*TokenResponse, error) {
	if m.passwordGrantFunc != nil {
		return m.passwordGrantFunc(email, password)
	}
	return nil, errors.New("not implemented")
}

func testPerms() Permissions {
	return Permissions{
		"ADMIN":   {"admin:access", "analytics:view"},
		"PATIENT": {"appointment:view"},
	}
}

func postJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	return httptest.NewRequest("POST", path, bytes.NewReader(payload))
}

func TestRegister_Success(t *testing.T) {
	var assignedRole string
	kc := &mockKeycloak{
		createUserFunc: func(user KeycloakUser) (string, error) {
			if user.Username != "jane@example.com" {
				t.Errorf("Expected lowercased email as username, got %q", user.Username)
			}
			if user.FirstName != "Jane" || user.LastName != "Smith" {
				t.Errorf("Expected split name Jane/Smith, got %q/%q", user.FirstName, user.LastName)
			}
			return "kc-123", nil
		},
		setPasswordFunc: func(userID, password string, temporary bool) error {
			if temporary {
				t.Error("Self-registered passwords must be permanent")
			}
			return nil
		},
		getRoleFunc: func(roleName string) (*KeycloakRole, error) {
			return &KeycloakRole{ID: "role-patient", Name: roleName}, nil
		},
		assignRoleFunc: func(userID string, role KeycloakRole) error {
			assignedRole = role.Name
			return nil
		},
	}
	handler := NewHandler(kc, testPerms())

	req := postJSON(t, "/auth/register", RegisterRequest{
		FullName: "Jane Smith",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	w := httptest.NewRecorder()

	handler.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if assignedRole != PatientRole {
		t.Errorf("Expected %q role assignment, got %q", PatientRole, assignedRole)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "jane@example.com", Password: "secret123"}},
		{"invalid email", RegisterRequest{FullName: "Jane Smith", Email: "nope", Password: "secret123"}},
		{"short password", RegisterRequest{FullName: "Jane Smith", Email: "jane@example.com", Password: "123"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHandler(&mockKeycloak{}, testPerms())

			w := httptest.NewRecorder()
			handler.Register(w, postJSON(t, "/auth/register", tc.req))

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRegister_RollsBackOnRoleFailure(t *testing.T) {
	deleted := false
	kc := &mockKeycloak{
		createUserFunc:  func(user KeycloakUser) (string, error) { return "kc-123", nil },
		setPasswordFunc: func(userID, password string, temporary bool) error { return nil },
		getRoleFunc: func(roleName string) (*KeycloakRole, error) {
			return nil, ErrRoleNotFound
		},
		deleteUserFunc: func(userID string) error {
			if userID != "kc-123" {
				t.Errorf("Expected rollback of kc-123, got %q", userID)
			}
			deleted = true
			return nil
		},
	}
	handler := NewHandler(kc, testPerms())

	w := httptest.NewRecorder()
	handler.Register(w, postJSON(t, "/auth/register", RegisterRequest{
		FullName: "Jane Smith",
		Email:    "jane@example.com",
		Password: "secret123",
	}))

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d", w.Code)
	}
	if !deleted {
		t.Error("Expected the orphaned Keycloak user to be rolled back")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	kc := &mockKeycloak{
		passwordGrantFunc: func(email, password string) (*TokenResponse, error) {
			return nil, ErrInvalidCredentials
		},
	}
	handler := NewHandler(kc, testPerms())

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/auth/login", LoginRequest{Email: "jane@example.com", Password: "wrong"}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	kc := &mockKeycloak{
		passwordGrantFunc: func(email, password string) (*TokenResponse, error) {
			return &TokenResponse{AccessToken: "token-abc", TokenType: "Bearer", ExpiresIn: 300}, nil
		},
	}
	handler := NewHandler(kc, testPerms())

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/auth/login", LoginRequest{Email: "jane@example.com", Password: "secret123"}))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var tokens TokenResponse
	json.Unmarshal(w.Body.Bytes(), &tokens)
	if tokens.AccessToken != "token-abc" {
		t.Errorf("Expected the token payload verbatim, got %+v", tokens)
	}
}

func TestMe_ReportsAdminFlag(t *testing.T) {
	handler := NewHandler(&mockKeycloak{}, testPerms())

	req := httptest.NewRequest("GET", "/auth/me", nil)
	ctx := ContextWithPrincipal(req.Context(), &Principal{
		UserID: "user-1",
		Email:  "admin@healhub.test",
		Roles:  []string{"ADMIN"},
	})
	w := httptest.NewRecorder()

	handler.Me(w, req.WithContext(ctx))

	var response MeResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	if !response.IsAdmin {
		t.Error("Expected is_admin=true for the ADMIN role")
	}
}

func TestMe_Unauthenticated(t *testing.T) {
	handler := NewHandler(&mockKeycloak{}, testPerms())

	w := httptest.NewRecorder()
	handler.Me(w, httptest.NewRequest("GET", "/auth/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"Jane Smith", "Jane", "Smith"},
		{"Jane", "Jane", ""},
		{"Jane van der Berg", "Jane", "van der Berg"},
	}
	for _, tc := range tests {
		first, last := splitFullName(tc.in)
		if first != tc.first || last != tc.last {
			t.Errorf("splitFullName(%q) = %q/%q, want %q/%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}

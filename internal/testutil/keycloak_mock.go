package testutil

import (
	"sync"

	"github.com/google/uuid"

	"github.com/HealHub-Care/hospital-service/internal/auth"
)

// MockKeycloak is an in-memory stand-in for the Keycloak client. It makes no
// HTTP calls.
type MockKeycloak struct {
	mu        sync.RWMutex
	users     map[string]*auth.KeycloakUser // userID -> user
	passwords map[string]string             // email -> password
	roles     map[string]*auth.KeycloakRole // roleName -> role

	// Failure injection hooks
	CreateUserErr  error
	SetPasswordErr error
	AssignRoleErr  error
}

// NewMockKeycloak creates a new mock Keycloak client with the realm roles
// pre-populated
func NewMockKeycloak() *MockKeycloak {
	return &MockKeycloak{
		users:     make(map[string]*auth.KeycloakUser),
		passwords: make(map[string]string),
		roles: map[string]*auth.KeycloakRole{
			"ADMIN":   {ID: "role-admin", Name: "ADMIN"},
			"PATIENT": {ID: "role-patient", Name: "PATIENT"},
		},
	}
}

// CreateUser stores a user in memory and returns a generated ID
func (m *MockKeycloak) CreateUser(user auth.KeycloakUser) (string, error) {
	if m.CreateUserErr != nil {
		return "", m.CreateUserErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userID := uuid.New().String()
	user.ID = userID
	user.Enabled = true
	m.users[userID] = &user

	return userID, nil
}

// SetPassword records the password for the user's email
func (m *MockKeycloak) SetPassword(userID, password string, temporary bool) error {
	if m.SetPasswordErr != nil {
		return m.SetPasswordErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return auth.ErrUserNotFound
	}
	m.passwords[user.Email] = password

	return nil
}

// GetRole retrieves a role by name
func (m *MockKeycloak) GetRole(roleName string) (*auth.KeycloakRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	role, exists := m.roles[roleName]
	if !exists {
		return nil, auth.ErrRoleNotFound
	}

	return role, nil
}

// AssignRole validates the user exists; assignments are not tracked
func (m *MockKeycloak) AssignRole(userID string, role auth.KeycloakRole) error {
	if m.AssignRoleErr != nil {
		return m.AssignRoleErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, exists := m.users[userID]; !exists {
		return auth.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user from memory
func (m *MockKeycloak) DeleteUser(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[userID]; !exists {
		return auth.ErrUserNotFound
	}
	delete(m.users, userID)

	return nil
}

// PasswordGrant checks the recorded password and returns a fake token pair
func (m *MockKeycloak) PasswordGrant(email, password string) (*auth.TokenResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, exists := m.passwords[email]
	if !exists || stored != password {
		return nil, auth.ErrInvalidCredentials
	}

	return &auth.TokenResponse{
		AccessToken:  "mock-access-token",
		RefreshToken: "mock-refresh-token",
		ExpiresIn:    300,
		TokenType:    "Bearer",
	}, nil
}

// UserCount returns how many users exist in the mock
func (m *MockKeycloak) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

var _ auth.KeycloakInterface = (*MockKeycloak)(nil)

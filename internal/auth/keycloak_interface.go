package auth

// KeycloakInterface defines the contract for Keycloak operations
// This allows for easy mocking in tests
type KeycloakInterface interface {
	CreateUser(user KeycloakUser) (string, error)
	SetPassword(userID string, password string, temporary bool) error
	GetRole(roleName string) (*KeycloakRole, error)
	AssignRole(userID string, role KeycloakRole) error
	DeleteUser(userID string) error
	PasswordGrant(email, password string) (*TokenResponse, error)
}

// Ensure KeycloakClient implements KeycloakInterface
var _ KeycloakInterface = (*KeycloakClient)(nil)

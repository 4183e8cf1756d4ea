package testutil

import (
	"crypto/rsa"
	"testing"

	"github.com/HealHub-Care/hospital-service/internal/auth"
)

// CreateTestVerifier creates a verifier configured for integration testing.
// It returns the verifier and the private key to sign test tokens.
func CreateTestVerifier(t *testing.T) (*auth.Verifier, *rsa.PrivateKey) {
	t.Helper()

	privateKey, publicKey := GenerateTestKeyPair(t)

	testJWKS := auth.NewTestJWKS(publicKey)

	cfg := auth.Config{
		Issuer: "https://test-keycloak.com/realms/test",
	}

	verifier := auth.NewVerifier(cfg, testJWKS)

	return verifier, privateKey
}

// TestPermissions returns the role -> permission map used across tests. It
// mirrors permissions.yml.
func TestPermissions() auth.Permissions {
	return auth.Permissions{
		"ADMIN": {
			"admin:access",
			"analytics:view",
			"appointment:view", "appointment:create", "appointment:update",
			"enquiry:view", "enquiry:update",
			"record:view",
		},
		"PATIENT": {
			"appointment:view", "appointment:create", "appointment:update",
			"record:view",
		},
	}
}

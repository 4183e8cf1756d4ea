package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasPermission_CaseInsensitiveRoles(t *testing.T) {
	perms := Permissions{
		"ADMIN":   {"admin:access"},
		"PATIENT": {"appointment:view"},
	}

	tests := []struct {
		name       string
		roles      []string
		permission string
		want       bool
	}{
		{"exact role match", []string{"ADMIN"}, "admin:access", true},
		{"lowercase keycloak role", []string{"admin"}, "admin:access", true},
		{"wrong permission", []string{"PATIENT"}, "admin:access", false},
		{"unknown role", []string{"VISITOR"}, "admin:access", false},
		{"no roles", nil, "admin:access", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pr := &Principal{UserID: "u1", Roles: tc.roles}
			if got := HasPermission(pr, tc.permission, perms); got != tc.want {
				t.Errorf("HasPermission(%v, %q) = %v, want %v", tc.roles, tc.permission, got, tc.want)
			}
		})
	}
}

func TestIsAdmin_DerivedFromPermissionMap(t *testing.T) {
	perms := Permissions{
		"ADMIN":   {"admin:access"},
		"PATIENT": {"appointment:view"},
	}

	if !IsAdmin(&Principal{Roles: []string{"ADMIN"}}, perms) {
		t.Error("ADMIN role must carry the admin flag")
	}
	if IsAdmin(&Principal{Roles: []string{"PATIENT"}}, perms) {
		t.Error("PATIENT role must not carry the admin flag")
	}
}

func TestLoadPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "permissions.yml")

	content := []byte(`roles:
  ADMIN:
    - admin:access
    - enquiry:update
  PATIENT:
    - appointment:view
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	perms, err := LoadPermissions(path)
	if err != nil {
		t.Fatalf("LoadPermissions failed: %v", err)
	}

	if len(perms["ADMIN"]) != 2 {
		t.Errorf("Expected 2 admin permissions, got %v", perms["ADMIN"])
	}
	if len(perms["PATIENT"]) != 1 {
		t.Errorf("Expected 1 patient permission, got %v", perms["PATIENT"])
	}
}

func TestLoadPermissions_MissingFile(t *testing.T) {
	if _, err := LoadPermissions("does-not-exist.yml"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

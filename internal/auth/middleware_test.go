package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HealHub-Care/hospital-service/internal/auth"
	"github.com/HealHub-Care/hospital-service/internal/testutil"
)

func TestMiddleware_ValidToken(t *testing.T) {
	verifier, key := testutil.CreateTestVerifier(t)

	var principal *auth.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := auth.Middleware(verifier)(next)

	req := httptest.NewRequest("GET", "/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.GeneratePatientToken(t, key, "jane@example.com"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if principal == nil {
		t.Fatal("Expected principal in request context")
	}
	if principal.Email != "jane@example.com" {
		t.Errorf("Expected jane@example.com, got %q", principal.Email)
	}
}

func TestMiddleware_RejectsBadRequests(t *testing.T) {
	verifier, _ := testutil.CreateTestVerifier(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := auth.Middleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached")
			}))

			req := httptest.NewRequest("GET", "/appointments", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	perms := testutil.TestPermissions()

	tests := []struct {
		name       string
		roles      []string
		permission string
		wantStatus int
	}{
		{"admin reaches admin route", []string{"ADMIN"}, "admin:access", http.StatusOK},
		{"patient blocked from admin route", []string{"PATIENT"}, "admin:access", http.StatusForbidden},
		{"patient books appointments", []string{"PATIENT"}, "appointment:create", http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := auth.RequirePermission(tc.permission, perms)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("GET", "/admin/overview", nil)
			ctx := auth.ContextWithPrincipal(req.Context(), &auth.Principal{
				UserID: "user-1",
				Roles:  tc.roles,
			})
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req.WithContext(ctx))

			if w.Code != tc.wantStatus {
				t.Errorf("Expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}

func TestRequirePermission_Unauthenticated(t *testing.T) {
	handler := auth.RequirePermission("appointment:view", testutil.TestPermissions())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not be reached")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/appointments", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

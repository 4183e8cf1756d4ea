package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

// PatientRole is the realm role assigned to self-registered users.
const PatientRole = "PATIENT"

// Handler exposes the register/login proxy and the identity endpoint.
type Handler struct {
	keycloak KeycloakInterface
	perms    Permissions
}

// NewHandler creates the auth handler.
func NewHandler(keycloak KeycloakInterface, perms Permissions) *Handler {
	return &Handler{keycloak: keycloak, perms: perms}
}

// RegisterRequest represents a sign-up submission
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a sign-in submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MeResponse reports the verified identity and the derived role flag
type MeResponse struct {
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"is_admin"`
}

// Register creates the user in Keycloak and assigns the PATIENT role.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.FullName == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Full name is required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "validation_error", "A valid email is required")
		return
	}
	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "validation_error", "Password must be at least 6 characters")
		return
	}

	firstName, lastName := splitFullName(req.FullName)

	userID, err := h.keycloak.CreateUser(KeycloakUser{
		Username:  req.Email,
		Email:     req.Email,
		FirstName: firstName,
		LastName:  lastName,
		Enabled:   true,
		Attributes: map[string][]string{
			"full_name": {req.FullName},
		},
	})
	if err != nil {
		respondError(w, http.StatusBadGateway, "registration_failed", "Failed to register user: "+err.Error())
		return
	}

	if err := h.keycloak.SetPassword(userID, req.Password, false); err != nil {
		h.rollback(userID)
		respondError(w, http.StatusBadGateway, "registration_failed", "Failed to set password: "+err.Error())
		return
	}

	role, err := h.keycloak.GetRole(PatientRole)
	if err != nil {
		h.rollback(userID)
		respondError(w, http.StatusBadGateway, "registration_failed", "Failed to resolve patient role: "+err.Error())
		return
	}

	if err := h.keycloak.AssignRole(userID, *role); err != nil {
		h.rollback(userID)
		respondError(w, http.StatusBadGateway, "registration_failed", "Failed to assign patient role: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Account created successfully",
		"user_id": userID,
	})
}

// Login proxies the password grant and returns the token payload verbatim.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Email and password are required")
		return
	}

	tokens, err := h.keycloak.PasswordGrant(strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}
		respondError(w, http.StatusBadGateway, "login_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
}

// Me reports the authenticated identity and whether it carries the admin flag.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "User not authenticated")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MeResponse{
		UserID:  principal.UserID,
		Email:   principal.Email,
		Roles:   principal.Roles,
		IsAdmin: IsAdmin(principal, h.perms),
	})
}

func (h *Handler) rollback(userID string) {
	if err := h.keycloak.DeleteUser(userID); err != nil {
		log.Printf("[ERROR] Failed to roll back Keycloak user %s: %v", userID, err)
	}
}

func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

package records

import (
	"encoding/json"
	"net/http"

	"github.com/HealHub-Care/hospital-service/internal/auth"
)

type Handler struct {
	service ServiceInterface
	perms   auth.Permissions
}

func NewHandler(service ServiceInterface, perms auth.Permissions) *Handler {
	return &Handler{service: service, perms: perms}
}

// ListRecords handles GET /medical-records. Admins see every record,
// patients see their own.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	pr, ok := auth.FromContext(r.Context())
	if !ok || pr.Email == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	response, err := h.service.ListRecords(r.Context(), pr.Email, auth.IsAdmin(pr, h.perms))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

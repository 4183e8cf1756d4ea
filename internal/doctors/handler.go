package doctors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HealHub-Care/hospital-service/internal/pagination"
	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListDoctors handles GET /doctors with optional specialty and search filters.
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)
	specialty := r.URL.Query().Get("specialty")

	response, err := h.service.ListDoctors(r.Context(), specialty, params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetDoctor handles GET /doctors/{id}. An unknown id renders the not-found
// body rather than an internal error.
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Doctor ID is required")
		return
	}

	doctor, err := h.service.GetDoctor(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "Doctor not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DoctorSuccessResponse{
		Success: true,
		Doctor:  doctor,
	})
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

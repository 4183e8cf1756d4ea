package analytics

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Overview handles GET /admin/overview.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Overview(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AppointmentAnalytics handles GET /admin/analytics/appointments.
func (h *Handler) AppointmentAnalytics(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.AppointmentAnalytics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DoctorAnalytics handles GET /admin/analytics/doctors.
func (h *Handler) DoctorAnalytics(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.DoctorAnalytics(r.Context())
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

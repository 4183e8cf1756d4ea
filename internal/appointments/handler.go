package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/HealHub-Care/hospital-service/internal/auth"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// BookAppointment handles POST /appointments. The patient email on the form
// defaults to the authenticated principal when omitted.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.PatientEmail == "" {
		if pr, ok := auth.FromContext(r.Context()); ok {
			req.PatientEmail = pr.Email
		}
	}

	appointment, err := h.service.BookAppointment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respondError(w, http.StatusBadRequest, "validation_error", validationMessage(err))
			return
		}
		respondError(w, http.StatusInternalServerError, "booking_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AppointmentSuccessResponse{
		Success:     true,
		Message:     "Appointment booked successfully",
		Appointment: appointment,
	})
}

// ListAppointments handles GET /appointments for the authenticated patient,
// with an optional ?status= filter.
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	pr, ok := auth.FromContext(r.Context())
	if !ok || pr.Email == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	status := r.URL.Query().Get("status")

	response, err := h.service.ListAppointments(r.Context(), pr.Email, status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			respondError(w, http.StatusBadRequest, "validation_error",
				"Status must be one of: upcoming, completed, cancelled")
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CancelAppointment handles POST /appointments/{id}/cancel.
func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.service.CancelAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "Appointment not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "cancel_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AppointmentSuccessResponse{
		Success:     true,
		Message:     "Appointment cancelled successfully",
		Appointment: appointment,
	})
}

// RescheduleAppointment handles POST /appointments/{id}/reschedule. The
// record is left untouched; the response acknowledges the request.
func (h *Handler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.service.RescheduleAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "Appointment not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "reschedule_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AppointmentSuccessResponse{
		Success:     true,
		Message:     "Reschedule request received. Our team will contact you to arrange a new time.",
		Appointment: appointment,
	})
}

// validationMessage strips the sentinel prefix, leaving the form message.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

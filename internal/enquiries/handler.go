package enquiries

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateEnquiry handles POST /enquiries. This endpoint is public: the
// contact form does not require an account.
func (h *Handler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	enquiry, err := h.service.CreateEnquiry(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respondError(w, http.StatusBadRequest, "validation_error", validationMessage(err))
			return
		}
		respondError(w, http.StatusInternalServerError, "create_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(EnquirySuccessResponse{
		Success: true,
		Message: "Thank you for your enquiry. We will get back to you shortly.",
		Enquiry: enquiry,
	})
}

// ListEnquiries handles GET /enquiries with an optional ?status= filter.
func (h *Handler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	response, err := h.service.ListEnquiries(r.Context(), status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			respondError(w, http.StatusBadRequest, "validation_error",
				"Status must be one of: new, in-progress, completed")
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateStatus handles PATCH /enquiries/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	enquiry, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, "validation_error",
				"Status must be one of: new, in-progress, completed")
		case errors.Is(err, ErrEnquiryNotFound):
			respondError(w, http.StatusNotFound, "not_found", "Enquiry not found")
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EnquirySuccessResponse{
		Success: true,
		Message: "Enquiry status updated",
		Enquiry: enquiry,
	})
}

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

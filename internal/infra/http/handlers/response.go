package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/dealflow-pipeline/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the usecase error taxonomy onto HTTP statuses so the
// frontend gets a distinguishable failure instead of a generic 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsNotFoundError(err):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "LEAD_NOT_FOUND",
			Message: err.Error(),
		})
	case usecase.IsDomainError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "INTERNAL_ERROR",
			Message: err.Error(),
		})
	}
}

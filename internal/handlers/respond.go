package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// writeFailure maps an operation error to a deterministic status code and
// the uniform error body.
func writeFailure(w http.ResponseWriter, err error) {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrNoSeats):
		writeError(w, http.StatusConflict, "no seats remaining")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

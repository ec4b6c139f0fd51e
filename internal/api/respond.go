package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps service errors onto HTTP statuses. Unrecognized errors are
// logged and reported as a generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case models.IsValidation(err), errors.Is(err, models.ErrPageLimit):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrCityNotFound), errors.Is(err, models.ErrPageNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrDuplicateCity), errors.Is(err, models.ErrDuplicateTitle):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case models.IsGeneration(err):
		logger.Error("generation failed", zap.Error(err))
		writeErrorMessage(w, http.StatusBadGateway, "content generation failed")
	default:
		logger.Error("request failed", zap.Error(err))
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

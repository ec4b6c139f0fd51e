package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/models"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &models.ValidationError{Field: "title", Reason: "too short"}, http.StatusBadRequest},
		{"page limit", models.ErrPageLimit, http.StatusBadRequest},
		{"city not found", models.ErrCityNotFound, http.StatusNotFound},
		{"page not found", models.ErrPageNotFound, http.StatusNotFound},
		{"duplicate city", models.ErrDuplicateCity, http.StatusConflict},
		{"duplicate title", models.ErrDuplicateTitle, http.StatusConflict},
		{"generation failure", &models.GenerationError{Op: "newsletter", Err: errors.New("upstream")}, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, zap.NewNop(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, zap.NewNop(), errors.New("pq: connection refused at 10.0.0.3"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

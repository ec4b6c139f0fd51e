package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/cache"
	"github.com/geocities-ai/backend/internal/cities"
	"github.com/geocities-ai/backend/internal/models"
	"github.com/geocities-ai/backend/internal/ratelimit"
)

// AIHandler serves ambient content generation and the cached snapshot.
type AIHandler struct {
	generator *cache.Generator
	cities    *cities.Service
	limiter   *ratelimit.RateLimiter
	limit     int
	logger    *zap.Logger
}

func NewAIHandler(generator *cache.Generator, citySvc *cities.Service, limiter *ratelimit.RateLimiter, limit int, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		generator: generator,
		cities:    citySvc,
		limiter:   limiter,
		limit:     limit,
		logger:    logger,
	}
}

func (h *AIHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ai/{cityId}/cached", h.GetCachedContent).Methods("GET")
	router.HandleFunc("/api/ai/{cityId}/{kind:public-square|newsletter|radio}", h.Generate).Methods("POST")
}

type generateResponse struct {
	CityID      string    `json:"city_id"`
	Kind        string    `json:"kind"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
	Cached      bool      `json:"cached"`
}

func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cityID, kind := vars["cityId"], vars["kind"]

	if !models.ValidKind(kind) {
		writeErrorMessage(w, http.StatusBadRequest, "unknown artifact kind")
		return
	}

	city, err := h.cities.Get(r.Context(), cityID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	// A limiter outage should not take generation down with it; the cache
	// already bounds model spend.
	allowed, err := h.limiter.Allow(r.Context(), cityID, h.limit)
	if err != nil {
		h.logger.Warn("rate limit check failed, allowing request", zap.Error(err))
	} else if !allowed {
		writeErrorMessage(w, http.StatusTooManyRequests, "generation rate limit exceeded")
		return
	}

	content, cached, err := h.generator.Generate(r.Context(), kind, city)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("ambient content served",
		zap.String("city_id", cityID),
		zap.String("kind", kind),
		zap.Bool("cached", cached))

	writeJSON(w, http.StatusOK, generateResponse{
		CityID:      cityID,
		Kind:        kind,
		Content:     content,
		GeneratedAt: time.Now().UTC(),
		Cached:      cached,
	})
}

func (h *AIHandler) GetCachedContent(w http.ResponseWriter, r *http.Request) {
	cityID := mux.Vars(r)["cityId"]

	if _, err := h.cities.Get(r.Context(), cityID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, h.generator.GetCachedArtifacts(r.Context(), cityID))
}

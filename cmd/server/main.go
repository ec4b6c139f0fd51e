package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/ai"
	"github.com/geocities-ai/backend/internal/api"
	"github.com/geocities-ai/backend/internal/cache"
	"github.com/geocities-ai/backend/internal/cities"
	"github.com/geocities-ai/backend/internal/classify"
	"github.com/geocities-ai/backend/internal/config"
	"github.com/geocities-ai/backend/internal/db"
	"github.com/geocities-ai/backend/internal/pages"
	"github.com/geocities-ai/backend/internal/ratelimit"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	database, err := db.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Init(ctx); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	limiter, err := ratelimit.NewRateLimiter(cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to initialize rate limiter", zap.Error(err))
	}
	defer limiter.Close()

	model, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to initialize gemini client", zap.Error(err))
	}

	citySvc := cities.NewService(database)
	generator := cache.NewGenerator(database, database, model, logger)
	detector := classify.NewDetector(model)
	pageSvc := pages.NewService(database, model, detector,
		time.Duration(cfg.ClassifyTimeoutS)*time.Second, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", healthHandler).Methods("GET")
	api.NewCityHandler(citySvc, logger).RegisterRoutes(router)
	api.NewPageHandler(pageSvc, logger).RegisterRoutes(router)
	api.NewAIHandler(generator, citySvc, limiter, cfg.GenerationPerHr, logger).RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// Let in-flight classification verdicts land before the process exits.
	pageSvc.Drain()
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}

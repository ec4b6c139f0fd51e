package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	RedisURL         string
	ServerPort       string
	GeminiAPIKey     string
	GeminiModel      string
	GenerationPerHr  int
	ClassifyTimeoutS int
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GenerationPerHr:  getEnvInt("GENERATION_RATE_PER_HOUR", 30),
		ClassifyTimeoutS: getEnvInt("CLASSIFY_TIMEOUT_SECONDS", 45),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

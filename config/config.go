package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	AppMode           string
	DatabaseURL       string
	SessionSecret     string
	TokenExpiryHours  int
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	OpenRouterReferer string
	OpenRouterTitle   string
	AskTimeoutSec     int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:           getEnv("APP_PORT", "8000"),
		AppMode:           getEnv("APP_MODE", "debug"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "fallback-secret-key"),
		TokenExpiryHours:  getEnvAsInt("TOKEN_EXPIRY_HOURS", 24),
		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "openai/gpt-3.5-turbo"),
		OpenRouterReferer: getEnv("OPENROUTER_REFERER", "https://periodic-facts-bot.replit.app"),
		OpenRouterTitle:   getEnv("OPENROUTER_TITLE", "Periodic Table Facts Bot"),
		AskTimeoutSec:     getEnvAsInt("ASK_TIMEOUT_SEC", 30),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

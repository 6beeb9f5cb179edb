package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Chat gateway
	ChatRateLimit  int
	ChatRateWindow time.Duration
	CacheTTL       time.Duration
	CacheMaxItems  int
	// When true, the rate limiter and response cache live in Redis so
	// multiple instances share one view.
	DistributedState bool

	// Esports data APIs
	EsportsAPIBaseURL string
	StreamAPIBaseURL  string
	TeamSlug          string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    mustGetEnv("REDIS_URL"),

		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		ChatRateLimit:    getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 10),
		ChatRateWindow:   getEnvAsDurationOrDefault("CHAT_RATE_WINDOW", time.Minute),
		CacheTTL:         getEnvAsDurationOrDefault("CHAT_CACHE_TTL", 10*time.Minute),
		CacheMaxItems:    getEnvAsIntOrDefault("CHAT_CACHE_MAX_ITEMS", 512),
		DistributedState: getEnvOrDefault("DISTRIBUTED_STATE", "false") == "true",

		EsportsAPIBaseURL: getEnvOrDefault("ESPORTS_API_BASE_URL", "https://api.pandascore.co"),
		StreamAPIBaseURL:  getEnvOrDefault("STREAM_API_BASE_URL", "https://api.twitch.tv/helix"),
		TeamSlug:          getEnvOrDefault("TEAM_SLUG", "furia"),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

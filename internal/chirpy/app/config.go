package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Secret   string // Required: HMAC secret for access tokens
	PolkaKey string // Required: API key the payment-provider webhook presents

	Platform            string        // Platform (dev, staging, prod); admin reset only works on dev (default: dev)
	DatabaseFile        string        // Path to SQLite database file (default: ./chirpy.db)
	StaticDir           string        // Directory served under /app/ (default: ./app)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return Config{
		Secret:              os.Getenv("SECRET"),
		PolkaKey:            os.Getenv("POLKA_KEY"),
		Platform:            getEnvOrDefault("PLATFORM", "dev"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "chirpy.db"),
		StaticDir:           getEnvOrDefault("STATIC_DIR", "./app"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

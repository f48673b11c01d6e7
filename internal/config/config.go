package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string
	LogJSON     bool

	// LegacyTasksWritable keeps tasks without an owner writable by any
	// caller, authenticated or not. Pre-auth rows depend on this staying
	// true; flip it to fence legacy tasks off from signed-in users.
	LegacyTasksWritable bool
}

// Load reads configuration from the environment (.env is honored when
// present). DATABASE_URL and JWT_SECRET are required: the server does not
// ship a fallback signing secret and refuses to start without a real one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "5000"),
		DatabaseURL:         dbURL,
		JWTSecret:           jwtSecret,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogJSON:             os.Getenv("LOG_JSON") == "true",
		LegacyTasksWritable: true,
	}

	if v := os.Getenv("LEGACY_TASKS_WRITABLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LegacyTasksWritable = b
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sigfig/step-challenge/internal/logger"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// DefaultTimezone is used for challenges that do not set their own zone.
	DefaultTimezone string
}

// LoadConfig reads configuration from .env / the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warning(".env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "stepchallenge"),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "America/Los_Angeles"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

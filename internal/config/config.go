package config

import "os"

// Config holds what the server process reads from the environment.
// Token settings (JWT_SECRET, JWT_EXPIRES_IN) are read by the auth
// package directly.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string
}

// Load reads the configuration from environment variables. godotenv is
// expected to have been loaded by the caller before this runs.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	return cfg
}

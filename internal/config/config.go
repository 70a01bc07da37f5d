package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerPort  int
	CORSOrigins string

	// Logging
	LogLevel      string
	LogDir        string
	LogFileMaxAge int // days
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnvInt("SERVER_PORT", 8080),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogDir:        getEnv("LOG_DIRECTORY", ""),
		LogFileMaxAge: getEnvInt("LOG_FILE_MAX_AGE", 2),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d (must be 1-65535)", c.ServerPort)
	}

	if c.LogLevel != "INFO" && c.LogLevel != "DEBUG" {
		return fmt.Errorf("invalid LOG_LEVEL: %s (use 'INFO' or 'DEBUG')", c.LogLevel)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

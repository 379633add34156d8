package config

import (
	"os"
)

type Config struct {
	Environment    string
	ServerPort     string
	DatabaseFile   string
	LogLevel       string
	LogFormat      string
	SeedSampleData bool
}

func Load() (*Config, error) {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("PORT", "8063"),
		DatabaseFile:   getEnv("DB_FILE", "attendance.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

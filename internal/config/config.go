package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/annur-digital/rekap-absensi-go/internal/pkg/validator"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	App   AppConfig
	Recap RecapConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// RecapConfig holds recap generation configuration
type RecapConfig struct {
	OrganizationName string
	DefaultPosition  string
	RankingTopN      int
	OutputDir        string
}

func Load() (*Config, error) {
	// .env is optional for the CLI; real environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	topN, err := strconv.Atoi(getEnv("RANKING_TOP_N", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RANKING_TOP_N: %w", err)
	}

	config.Recap = RecapConfig{
		OrganizationName: getEnv("ORG_NAME", "MTs. An-Nur Bululawang"),
		DefaultPosition:  getEnv("DEFAULT_POSITION", "Guru"),
		RankingTopN:      topN,
		OutputDir:        getEnv("OUTPUT_DIR", "."),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validator.IsInSlice(c.App.LogLevel, logLevels) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if c.Recap.OrganizationName == "" {
		return fmt.Errorf("ORG_NAME is required")
	}
	if c.Recap.DefaultPosition == "" {
		return fmt.Errorf("DEFAULT_POSITION is required")
	}
	if c.Recap.RankingTopN <= 0 {
		return fmt.Errorf("RANKING_TOP_N must be positive")
	}
	if c.Recap.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

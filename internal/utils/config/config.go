package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	OkLink      OkLinkConfig
	Export      ExportConfig
}

type OkLinkConfig struct {
	APIBaseURL string
	PageLimit  int

	MaxRetries        int
	RetryDelay        time.Duration
	RateLimitDelay    time.Duration
	RequestsPerSecond int
}

type ExportConfig struct {
	OutputDir string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Will not override env variables that already exist.
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		OkLink: OkLinkConfig{
			APIBaseURL:        envVarWithDefault("OKLINK_API_URL", "https://www.oklink.com"),
			PageLimit:         envVarAtoi("OKLINK_PAGE_LIMIT", 50),
			MaxRetries:        envVarAtoi("OKLINK_MAX_RETRIES", 3),
			RetryDelay:        envVarDuration("OKLINK_RETRY_DELAY", time.Second),
			RateLimitDelay:    envVarDuration("OKLINK_RATE_LIMIT_DELAY", 2*time.Second),
			RequestsPerSecond: envVarAtoi("OKLINK_REQUESTS_PER_SECOND", 5),
		},
		Export: ExportConfig{
			OutputDir: envVarWithDefault("EXPORT_OUTPUT_DIR", "csv"),
		},
	}
}

func envVarWithDefault(envName, fallback string) string {
	value := os.Getenv(envName)
	if value == "" {
		return fallback
	}

	return value
}

func envVarAtoi(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}

	return value
}

func envVarDuration(envName string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}

	return value
}

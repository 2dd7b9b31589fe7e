package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                  string
	Environment           string
	GoogleCredentialsFile string
	SpreadsheetID         string
	TasksRange            string
	RosterRange           string
	JWTSecret             string
	DashboardPasswordHash string
	TokenTTL              time.Duration
	RateLimitPerMinute    int
	MetricsEnabled        bool
}

func Load() Config {
	return Config{
		Addr:                  getEnv("APP_ADDR", ":8080"),
		Environment:           getEnv("APP_ENV", "development"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		TasksRange:            getEnv("TASKS_RANGE", "Tasks"),
		RosterRange:           getEnv("ROSTER_RANGE", "Employees"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		DashboardPasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		TokenTTL:              getEnvDuration("TOKEN_TTL", 12*time.Hour),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// AuthEnabled reports whether report routes require a session token.
func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.DashboardPasswordHash) != ""
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}
	if strings.TrimSpace(c.TasksRange) == "" {
		return fmt.Errorf("TASKS_RANGE must not be empty")
	}
	if strings.TrimSpace(c.RosterRange) == "" {
		return fmt.Errorf("ROSTER_RANGE must not be empty")
	}
	if c.AuthEnabled() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set when DASHBOARD_PASSWORD_HASH is configured")
	}
	if c.Environment == "production" && !c.AuthEnabled() {
		return fmt.Errorf("DASHBOARD_PASSWORD_HASH must be set in production")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("TOKEN_TTL must be at least one minute")
	}
	return nil
}

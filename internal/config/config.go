// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"walletgate/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort      string
	DB              db.Config
	LedgerBaseURL   string
	JWTSecret       string
	ProviderTimeout time.Duration

	// Provider base URLs, overridable for sandbox/test environments.
	PaystackBaseURL    string
	FlutterwaveBaseURL string
	PagaBaseURL        string
	FingraBaseURL      string
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("PROVIDER_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT_SECONDS: %w", err)
	}

	return &AppConfig{
		ServerPort:      serverPort,
		LedgerBaseURL:   getEnv("LEDGER_BASE_URL", "http://localhost:4100"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		ProviderTimeout: time.Duration(timeoutSeconds) * time.Second,

		PaystackBaseURL:    os.Getenv("PAYSTACK_BASE_URL"),
		FlutterwaveBaseURL: os.Getenv("FLUTTERWAVE_BASE_URL"),
		PagaBaseURL:        os.Getenv("PAGA_BASE_URL"),
		FingraBaseURL:      os.Getenv("FINGRA_BASE_URL"),

		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "walletgate"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

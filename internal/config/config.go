package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Shopify     ShopifyConfig
	Gemini      GeminiConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ShopifyConfig holds the non-secret Shopify settings. The shop domain and
// admin access token are secrets and resolve through the secrets loader at
// first pipeline invocation, not here.
type ShopifyConfig struct {
	APIVersion string
	Timeout    time.Duration
}

// GeminiConfig holds the non-secret generation settings. The API key resolves
// through the secrets loader.
type GeminiConfig struct {
	Model   string
	Timeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	shopifyTimeout, err := time.ParseDuration(getEnvOrViper("SHOPIFY_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHOPIFY_TIMEOUT: %w", err)
	}
	geminiTimeout, err := time.ParseDuration(getEnvOrViper("GEMINI_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Shopify: ShopifyConfig{
			APIVersion: getEnvOrViper("SHOPIFY_API_VERSION", "2026-01"),
			Timeout:    shopifyTimeout,
		},
		Gemini: GeminiConfig{
			Model:   getEnvOrViper("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: geminiTimeout,
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

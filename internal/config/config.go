package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Listings   ListingsConfig
	Stripe     StripeConfig
	Logging    LoggingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence
	Host               string
	Port               int `validate:"gt=0"`
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int `validate:"gt=0"`
	MaxIdleConnections int `validate:"gte=0"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int `validate:"gt=0"`
	Host           string
	GinMode        string `validate:"oneof=debug release test"`
	AllowedOrigins string
}

// ListingsConfig holds listings query configuration
type ListingsConfig struct {
	MLSName      string `validate:"required"`
	DefaultLimit int    `validate:"gt=0"`
	MaxLimit     int    `validate:"gt=0"`
}

// StripeConfig holds payment processor configuration. Price IDs come
// from the Stripe dashboard; a priced plan with no price ID configured
// is rejected at checkout time, not at startup.
type StripeConfig struct {
	SecretKey           string
	PriceDirectList     string
	PriceDirectListPlus string
	AppURL              string `validate:"omitempty,url"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "mls_feed"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Listings: ListingsConfig{
			MLSName:      getEnv("MLS_NAME", "ntreis2"),
			DefaultLimit: getEnvAsInt("LISTINGS_DEFAULT_LIMIT", 12),
			MaxLimit:     getEnvAsInt("LISTINGS_MAX_LIMIT", 100),
		},
		Stripe: StripeConfig{
			SecretKey:           getEnv("STRIPE_SECRET_KEY", ""),
			PriceDirectList:     getEnv("STRIPE_PRICE_DIRECT_LIST", ""),
			PriceDirectListPlus: getEnv("STRIPE_PRICE_DIRECT_LIST_PLUS", ""),
			AppURL:              getEnv("APP_URL", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Authentication & Security Configuration
	JWT      JWTConfig
	Internal InternalConfig

	// SMS Gateway Configuration
	SMS SMSConfig

	// Storage Configuration
	MinIO MinIOConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"ujenzi"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// JWTConfig is the configuration for the JWT.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// InternalConfig holds the shared key protecting internal endpoints.
type InternalConfig struct {
	InternalKey string `env:"INTERNAL_KEY"`
}

// SMSConfig is the configuration for the SMS gateway. The credential
// pair is never embedded in source; it must come from the environment.
type SMSConfig struct {
	Username string        `env:"SMS_USERNAME"`
	APIKey   string        `env:"SMS_API_KEY"`
	SenderID string        `env:"SMS_SENDER_ID"`
	Endpoint string        `env:"SMS_ENDPOINT" envDefault:"https://api.africastalking.com/version1/messaging"`
	Timeout  time.Duration `env:"SMS_TIMEOUT" envDefault:"10s"`
}

// MinIOConfig is the configuration for the raw payload archive.
type MinIOConfig struct {
	Enabled   bool   `env:"MINIO_ENABLED" envDefault:"false"`
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"sms-payloads"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// DiscordConfig is the configuration for Discord webhook diagnostics.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}

	if cfg.SMS.Username == "" || cfg.SMS.APIKey == "" {
		return fmt.Errorf("SMS_USERNAME and SMS_API_KEY are required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if cfg.MinIO.Enabled && (cfg.MinIO.AccessKey == "" || cfg.MinIO.SecretKey == "") {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MinIO is enabled")
	}

	return nil
}

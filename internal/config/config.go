package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	PassportAPI PassportAPIConfig
	Database    DatabaseConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	S3          S3Config
	Archive     ArchiveConfig
	Company     CompanyConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
	// PublicBaseURL is the externally reachable origin encoded into QR codes.
	PublicBaseURL string
}

// PassportAPIConfig holds the remote passport API settings.
type PassportAPIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. The dashboard uses basic
// auth with DashboardUser and the API key as password.
type AuthConfig struct {
	APIKey        string
	DashboardUser string
}

// S3Config holds AWS S3 configuration for archived QR images.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "qr/")
}

// ArchiveConfig holds the local QR image directory.
type ArchiveConfig struct {
	Dir string
}

// CompanyConfig holds the brand shown on public passport pages.
type CompanyConfig struct {
	Name    string
	Website string
	Support string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Port:          getEnvAsInt("SERVER_PORT", 8080),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		PassportAPI: PassportAPIConfig{
			BaseURL: getEnv("PASSPORT_API_URL", ""),
			Timeout: getEnvAsInt("PASSPORT_API_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "obedir"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey:        getEnv("API_KEY", ""),
			DashboardUser: getEnv("DASHBOARD_USER", "admin"),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "eu-north-1"),
			Prefix:  getEnv("S3_PREFIX", "qr/"),
		},
		Archive: ArchiveConfig{
			Dir: getEnv("ARCHIVE_DIR", "./data/qr"),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "Obedir Link"),
			Website: getEnv("COMPANY_WEBSITE", "https://obedir.com"),
			Support: getEnv("COMPANY_SUPPORT", "support@obedir.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if err := validateURL(c.Server.PublicBaseURL); err != nil {
		return fmt.Errorf("invalid public base URL: %w", err)
	}

	if c.PassportAPI.BaseURL == "" {
		return fmt.Errorf("passport API URL is required")
	}

	if err := validateURL(c.PassportAPI.BaseURL); err != nil {
		return fmt.Errorf("invalid passport API URL: %w", err)
	}

	if c.PassportAPI.Timeout < 1 {
		return fmt.Errorf("passport API timeout must be at least 1 second")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	if c.Auth.DashboardUser == "" {
		return fmt.Errorf("dashboard user is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if c.Archive.Dir == "" {
		return fmt.Errorf("archive directory is required")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RequestTimeout returns the per-request timeout for the passport API.
func (c *PassportAPIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required: %s", raw)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

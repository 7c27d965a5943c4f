// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	dbPath := cfg.Storage.DatabasePath
//	partnerID := cfg.Shopee.PartnerID
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration
type Config struct {
	Shopee        ShopeeConfig        `yaml:"shopee"`
	Fetch         FetchConfig         `yaml:"fetch"`
	Storage       StorageConfig       `yaml:"storage"`
	API           APIConfig           `yaml:"api"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ShopeeConfig holds the Shopee open-platform partner credentials.
// PartnerID and PartnerKey are issued per affiliate app and are required;
// every signed request uses them.
type ShopeeConfig struct {
	PartnerID   int64  `yaml:"partner_id"`
	PartnerKey  string `yaml:"partner_key"`
	BaseURL     string `yaml:"base_url"`
	RedirectURL string `yaml:"redirect_url"`
}

// FetchConfig holds conversion-report fetch tuning
type FetchConfig struct {
	PageSize       int           `yaml:"page_size"`
	PageDelay      time.Duration `yaml:"page_delay"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// APIConfig holds HTTP API server settings
type APIConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultBaseURL is the Shopee open-platform production host.
const DefaultBaseURL = "https://partner.shopeemobile.com"

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${SHOPEE_PARTNER_KEY})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	cfg := &Config{
		Shopee: ShopeeConfig{
			PartnerID:   getEnvInt64("SHOPEE_PARTNER_ID", 0),
			PartnerKey:  os.Getenv("SHOPEE_PARTNER_KEY"),
			BaseURL:     getEnv("SHOPEE_BASE_URL", DefaultBaseURL),
			RedirectURL: os.Getenv("SHOPEE_REDIRECT_URL"),
		},
		Fetch: FetchConfig{
			PageSize: getEnvInt("AMS_PAGE_SIZE", 0),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("AMS_DB_PATH", "ams.db"),
		},
		API: APIConfig{
			Port: getEnvInt("AMS_API_PORT", 8080),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from specified path, falls back to environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// Validate checks that the configuration is usable. Partner credentials are
// required by every signed call, so their absence is fatal at startup rather
// than per-request.
func (c *Config) Validate() error {
	if c.Shopee.PartnerID == 0 {
		return fmt.Errorf("config: shopee.partner_id is required")
	}
	if c.Shopee.PartnerKey == "" {
		return fmt.Errorf("config: shopee.partner_key is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Shopee.BaseURL == "" {
		c.Shopee.BaseURL = DefaultBaseURL
	}
	if c.Fetch.PageSize <= 0 {
		c.Fetch.PageSize = 100
	}
	if c.Fetch.PageDelay <= 0 {
		c.Fetch.PageDelay = 400 * time.Millisecond
	}
	if c.Fetch.RequestTimeout <= 0 {
		c.Fetch.RequestTimeout = 30 * time.Second
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "ams.db"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if len(c.API.AllowedOrigins) == 0 {
		c.API.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = "info"
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "text"
	}
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

// getEnvInt64 retrieves an int64 environment variable with a fallback default
func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		var result int64
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

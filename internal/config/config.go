package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Discord configuration
	Token   string
	AppID   string
	GuildID string

	// Web configuration
	HTTPAddr     string
	AssetDir     string
	AssetBaseURL string

	// Table housekeeping
	TableIdleTimeout time.Duration

	// Environment
	Environment string // "development" or "production"
	LogLevel    string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	idle, err := time.ParseDuration(getEnvWithDefault("TABLE_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TABLE_IDLE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Token:            os.Getenv("DISCORD_TOKEN"),
		AppID:            os.Getenv("APP_ID"),
		GuildID:          os.Getenv("GUILD_ID"),
		HTTPAddr:         getEnvWithDefault("HTTP_ADDR", ":8080"),
		AssetDir:         getEnvWithDefault("ASSET_DIR", filepath.Join(wd, "static")),
		AssetBaseURL:     getEnvWithDefault("ASSET_BASE_URL", "/static/cards"),
		TableIdleTimeout: idle,
		Environment:      getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// ValidateDiscord checks the settings the Discord bot needs
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	return nil
}

// ValidateWeb checks the settings the web server needs
func (c *Config) ValidateWeb() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.AssetBaseURL == "" {
		return fmt.Errorf("ASSET_BASE_URL is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string // "mysql" or "memory"
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

// AuthConfig holds authentication extras.
// DevBypass maps DevToken to the seeded administrator identity; it can only
// be enabled in dev mode and always defaults to disabled.
type AuthConfig struct {
	DevBypass bool
	DevToken  string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(),
		Auth:     loadAuthConfig(appMode),
	}

	log.Printf("Configuration loaded [MODE: %s, DB: %s]", appMode, config.Database.Driver)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	driver := getEnv("DB_DRIVER", "mysql")
	if driver != "mysql" && driver != "memory" {
		log.Printf("Warning: unknown DB_DRIVER '%s', falling back to mysql", driver)
		driver = "mysql"
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "ljmdi"),
	}
}

// loadJWTConfig loads JWT config
func loadJWTConfig() JWTConfig {
	expiryMins, _ := strconv.Atoi(getEnv("JWT_EXPIRY_MINUTES", "1440"))

	return JWTConfig{
		Secret:        getEnv("JWT_SECRET", "default_secret"),
		ExpiryMinutes: expiryMins,
	}
}

// loadAuthConfig loads auth extras. The bypass token never activates in prod.
func loadAuthConfig(mode string) AuthConfig {
	bypass, _ := strconv.ParseBool(getEnv("AUTH_DEV_BYPASS", "false"))
	if mode == "prod" {
		bypass = false
	}

	return AuthConfig{
		DevBypass: bypass,
		DevToken:  getEnv("AUTH_DEV_TOKEN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://ljmdi.org"
	}
	return origins
}

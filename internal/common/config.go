package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/homepage/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Profile  ProfileConfig
	Env      constants.Environment
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	// Path is the SQLite file used when URL is empty.
	Path string
	// URL is an optional postgres:// DSN; it takes precedence over Path.
	URL         string
	DialTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            int
	SecretKey       string
	GRPCAddr        string
	ShutdownTimeout time.Duration
}

// ProfileConfig holds profile seeding configuration
type ProfileConfig struct {
	SeedFile string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", constants.DefaultDBPath),
			URL:         getEnv("DB_URL", ""),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("PORT", constants.DefaultPort),
			SecretKey:       getEnv("SECRET_KEY", constants.DefaultSecretKey),
			GRPCAddr:        getEnv("GRPC_ADDR", ""),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Profile: ProfileConfig{
			SeedFile: getEnv("PROFILE_FILE", ""),
		},
		Env: constants.Environment(strings.ToLower(getEnv("APP_ENV", string(constants.EnvProduction)))),
	}
}

// Development reports whether APP_ENV selects development mode.
func (c *Config) Development() bool {
	return c.Env == constants.EnvDevelopment
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return NewAppError("CONFIG_ERROR", "PORT must be between 1 and 65535", ErrInvalidInput)
	}
	if c.Server.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "SECRET_KEY is required", ErrInvalidInput)
	}
	if c.Database.URL == "" && c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "DB_PATH or DB_URL is required", ErrInvalidInput)
	}
	switch c.Env {
	case constants.EnvProduction, constants.EnvDevelopment:
	default:
		return NewAppError("CONFIG_ERROR", "APP_ENV must be production or development", ErrInvalidInput)
	}
	return nil
}

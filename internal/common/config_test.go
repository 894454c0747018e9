package common

import (
	"errors"
	"testing"
	"time"

	"github.com/joseph-ayodele/homepage/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DB_PATH", "DB_URL", "PORT", "SECRET_KEY", "APP_ENV", "GRPC_ADDR", "PROFILE_FILE", "DB_DIAL_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	if cfg.Server.Port != constants.DefaultPort {
		t.Errorf("expected default port %d, got %d", constants.DefaultPort, cfg.Server.Port)
	}
	if cfg.Server.SecretKey != constants.DefaultSecretKey {
		t.Errorf("expected default secret key, got %q", cfg.Server.SecretKey)
	}
	if cfg.Database.Path != constants.DefaultDBPath {
		t.Errorf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Database.DialTimeout != 3*time.Second {
		t.Errorf("expected 3s dial timeout, got %v", cfg.Database.DialTimeout)
	}
	if cfg.Env != constants.EnvProduction || cfg.Development() {
		t.Errorf("expected production env, got %q", cfg.Env)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/homepage")
	t.Setenv("DB_DIAL_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()
	if cfg.Server.Port != 8081 {
		t.Errorf("expected port 8081, got %d", cfg.Server.Port)
	}
	if !cfg.Development() {
		t.Errorf("expected development mode, got %q", cfg.Env)
	}
	if cfg.Database.URL == "" {
		t.Errorf("expected DB_URL to be loaded")
	}
	if cfg.Database.DialTimeout != 3*time.Second {
		t.Errorf("unparseable duration should keep default, got %v", cfg.Database.DialTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"empty secret", func(c *Config) { c.Server.SecretKey = "" }},
		{"no database", func(c *Config) { c.Database.Path = ""; c.Database.URL = "" }},
		{"unknown env", func(c *Config) { c.Env = "staging" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{Path: "x.db"},
				Server:   ServerConfig{Port: 5000, SecretKey: "k"},
				Env:      constants.EnvProduction,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

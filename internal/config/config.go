// Package config loads service settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"cv-amplify/internal/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	LoginURL string `yaml:"login_url" validate:"required"`
}

type AuthConfig struct {
	// JWTSecret enables the identity gate when set.
	JWTSecret string        `yaml:"jwt_secret" validate:"omitempty,min=16"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type GenerationConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	// ServiceURL points the studio CLI at a remote generation service.
	ServiceURL string `yaml:"service_url" validate:"omitempty,url"`
}

type ExportConfig struct {
	ChromePath string `yaml:"chrome_path"`
}

type EventsConfig struct {
	DatabaseURL string `yaml:"database_url"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Auth       AuthConfig       `yaml:"auth"`
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	Events     EventsConfig     `yaml:"events"`
	Logger     logger.Config    `yaml:"logger"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Server:     ServerConfig{Port: 3000, LoginURL: "/auth/login"},
		Auth:       AuthConfig{TokenTTL: 24 * time.Hour},
		Generation: GenerationConfig{Timeout: 30 * time.Second},
		Logger:     logger.Config{Level: "info", Format: "json"},
	}
}

// AuthEnabled reports whether the identity gate is active.
func (c Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

// Load reads path (skipped when empty), applies environment overrides,
// fills defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("GENERATE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GENERATE_TIMEOUT: %v", err)
		}
		c.Generation.Timeout = d
	}
	setString(&c.Server.LoginURL, "LOGIN_URL")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Generation.ServiceURL, "AI_SERVICE_URL")
	setString(&c.Export.ChromePath, "CHROME_PATH")
	setString(&c.Events.DatabaseURL, "EVENTS_DATABASE_URL")
	setString(&c.Logger.Level, "LOG_LEVEL")
	setString(&c.Logger.Format, "LOG_FORMAT")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// fillDefaults covers zero values a YAML file may have written.
func (c *Config) fillDefaults() {
	d := Defaults()
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.LoginURL == "" {
		c.Server.LoginURL = d.Server.LoginURL
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = d.Auth.TokenTTL
	}
	if c.Generation.Timeout == 0 {
		c.Generation.Timeout = d.Generation.Timeout
	}
	if c.Logger.Level == "" {
		c.Logger.Level = d.Logger.Level
	}
	if c.Logger.Format == "" {
		c.Logger.Format = d.Logger.Format
	}
}

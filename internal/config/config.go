// Package config loads the immutable process configuration. Values come
// from an optional YAML file with environment variables taking precedence;
// the resulting struct is passed to constructors and never mutated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

// Load reads the config file at path (skipped if absent), applies
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "taskboard.db"},
		JWT:      JWTConfig{TTL: time.Hour},
		Auth:     AuthConfig{BcryptCost: 12},
	}

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		cfg.JWT.TTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cfg.Auth.BcryptCost = cost
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT secret is required (jwt.secret or JWT_SECRET)")
	}
	if len(cfg.JWT.Secret) < 32 {
		return nil, errors.New("JWT secret must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 14 {
		return nil, fmt.Errorf("bcrypt cost must be between 4 and 14, got %d", cfg.Auth.BcryptCost)
	}

	return cfg, nil
}

// ServerAddr returns the host:port the HTTP server should bind.
func (c *Config) ServerAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Package config loads relay settings from .env files, an optional YAML file
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when no Riot API key is configured
var ErrMissingAPIKey = errors.New("RIOT_API_KEY or RIOT-DEV-KEY environment variable not set")

// Config is the complete relay configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Riot    RiotConfig    `yaml:"riot"`
	Paging  PagingConfig  `yaml:"paging"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// RiotConfig contains upstream API settings
type RiotConfig struct {
	APIKey            string  `yaml:"api_key"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	ValidateKey       bool    `yaml:"validate_key"`
}

// PagingConfig contains match page settings
type PagingConfig struct {
	PageSize int `yaml:"page_size"`
	DropTail int `yaml:"drop_tail"`
	Workers  int `yaml:"workers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        4000,
			CORSOrigins: []string{"*"},
		},
		Riot: RiotConfig{
			RequestsPerSecond: 15,
			ValidateKey:       true,
		},
		Paging: PagingConfig{
			PageSize: 20,
			DropTail: 10,
			Workers:  4,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultEnvPaths are tried in order; the first .env found is loaded
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// Load reads the first .env found in envPaths (DefaultEnvPaths when empty),
// then the YAML file named by RELAY_CONFIG if set, then environment
// overrides, and validates the result.
func Load(envPaths ...string) (*Config, error) {
	if len(envPaths) == 0 {
		envPaths = DefaultEnvPaths
	}
	loaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("loaded .env", "path", path)
			loaded = true
			break
		}
	}
	if !loaded {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := Default()
	if path := os.Getenv("RELAY_CONFIG"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML file over the defaults without consulting the
// environment
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() error {
	if key := os.Getenv("RIOT_API_KEY"); key != "" {
		c.Riot.APIKey = key
	} else if key := os.Getenv("RIOT-DEV-KEY"); key != "" {
		c.Riot.APIKey = key
	}
	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = splitList(origins)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &c.Server.Port},
		{"PAGE_SIZE", &c.Paging.PageSize},
		{"PAGE_DROP_TAIL", &c.Paging.DropTail},
		{"FETCH_WORKERS", &c.Paging.Workers},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("UPSTREAM_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_RPS: %w", err)
		}
		c.Riot.RequestsPerSecond = rps
	}
	if raw := os.Getenv("VALIDATE_KEY"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid VALIDATE_KEY: %w", err)
		}
		c.Riot.ValidateKey = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) validate() error {
	if c.Riot.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Server.Port)
	}
	if c.Paging.PageSize < 1 || c.Paging.PageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100, got %d", c.Paging.PageSize)
	}
	if c.Paging.DropTail < 0 {
		return fmt.Errorf("drop tail must not be negative, got %d", c.Paging.DropTail)
	}
	if c.Paging.Workers < 1 {
		return fmt.Errorf("fetch workers must be at least 1, got %d", c.Paging.Workers)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParseLevel maps a level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

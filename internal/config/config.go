// Package config loads CLI defaults from .env, a YAML file and the
// environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "KINECLUB_CONFIG"
	EnvLogLevel   = "KINECLUB_LOG_LEVEL"
	EnvWorkers    = "KINECLUB_WORKERS"
	EnvPretty     = "KINECLUB_PRETTY"
	EnvFormat     = "KINECLUB_FORMAT"
)

// Config holds the CLI defaults.
type Config struct {
	LogLevel string    `yaml:"log_level"`
	Format   string    `yaml:"format"`
	Pretty   bool      `yaml:"pretty"`
	Workers  int       `yaml:"workers"`
	CSV      CSVConfig `yaml:"csv"`
}

// CSVConfig holds delimited text settings.
type CSVConfig struct {
	// Delimiter is a single character; empty means auto-detect.
	Delimiter string `yaml:"delimiter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   "auto",
		Pretty:   false,
		Workers:  4,
	}
}

// Load builds the configuration. path may be empty, in which case
// KINECLUB_CONFIG is consulted; a missing default file is not an error.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv(EnvPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPretty, err)
		}
		cfg.Pretty = b
	}
	return nil
}

// Validate rejects values the CLI cannot use.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	switch strings.ToLower(c.Format) {
	case "auto", "xlsx", "csv":
	default:
		return fmt.Errorf("invalid format: %s (must be auto, xlsx, or csv)", c.Format)
	}
	if n := len([]rune(c.CSV.Delimiter)); n > 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	return nil
}

// Comma returns the configured CSV delimiter, or 0 for auto-detect.
func (c CSVConfig) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return 0
}

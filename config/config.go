// Package config loads the dashboard settings from the environment and the layout file.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vainnor/spacex-dash/collector"
)

// Config holds the runtime settings of the dashboard
type Config struct {
	Addr            string        `env:"DASH_ADDR" envDefault:":8050"`
	DataSource      string        `env:"DASH_DATA_SOURCE"`
	DBTable         string        `env:"DASH_DB_TABLE"`
	LayoutFile      string        `env:"DASH_LAYOUT_FILE"`
	FetchTimeout    time.Duration `env:"DASH_FETCH_TIMEOUT" envDefault:"10s"`
	RateLimit       int           `env:"DASH_RATE_LIMIT" envDefault:"100"`
	RateWindow      time.Duration `env:"DASH_RATE_WINDOW" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"DASH_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads a .env file when present and parses the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return ParseEnv()
}

// ParseEnv parses the environment into a Config
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataSource == "" {
		cfg.DataSource = collector.DefaultSource
	}
	if cfg.DBTable == "" {
		cfg.DBTable = collector.DefaultTable
	}
	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("DASH_RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	return cfg, nil
}

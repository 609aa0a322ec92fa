package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kelseyhightower/envconfig"
)

// Config holds defaults read from TABCHART_* environment variables. Command
// line flags override them.
type Config struct {
	Format   string `envconfig:"FORMAT" default:"json"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	Pretty   bool   `envconfig:"PRETTY" default:"false"`
}

// loadConfig reads the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("TABCHART", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	return cfg, nil
}

// newLogger returns a slog logger writing human-readable lines to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "tabchart",
	})
	return slog.New(handler), nil
}

// Package config holds process settings and loads board presets from HCL
// or YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultMaxCells is the largest width*height a new game may have.
const DefaultMaxCells = 1 << 20

// Config is the server's runtime configuration, usually filled from flags.
type Config struct {
	Addr          string
	PresetsPath   string
	LogLevel      string
	LogFormat     string
	SessionIdle   time.Duration
	SweepInterval time.Duration
	MaxCells      int
}

// NewConfig fills defaults and validates c.
func NewConfig(c Config) (*Config, error) {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.SessionIdle == 0 {
		c.SessionIdle = time.Hour
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Minute
	}
	if c.MaxCells == 0 {
		c.MaxCells = DefaultMaxCells
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return nil, err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if c.SessionIdle < 0 || c.SweepInterval < 0 {
		return nil, errors.New("session durations must not be negative")
	}
	if c.MaxCells < 0 {
		return nil, fmt.Errorf("invalid max-cells %d: must be positive", c.MaxCells)
	}
	return &c, nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
}

// NewLogger builds the process logger described by c.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Package config loads storefront settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hammamikhairi/pizzaco/internal/availability"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Environment variable names.
const (
	EnvShopName  = "PIZZACO_SHOP_NAME"
	EnvOpenHour  = "PIZZACO_OPEN_HOUR"
	EnvCloseHour = "PIZZACO_CLOSE_HOUR"
	EnvTick      = "PIZZACO_TICK"
	EnvLogLevel  = "PIZZACO_LOG_LEVEL"
	EnvLogFile   = "PIZZACO_LOG_FILE"
	EnvNoChime   = "PIZZACO_NO_CHIME"
)

// DefaultShopName is shown in the header when none is configured.
const DefaultShopName = "Zhe Kai's Pizza Co."

// Config holds the configuration for the storefront.
type Config struct {
	ShopName     string
	Hours        availability.Hours
	TickInterval time.Duration
	LogLevel     logger.Level
	LogFile      string // "stderr" logs to the console
	Chime        bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		ShopName:     DefaultShopName,
		Hours:        availability.Default,
		TickInterval: time.Second,
		LogLevel:     logger.LevelNormal,
		LogFile:      ".pizzaco-logs/pizzaco.log",
		Chime:        true,
	}
}

// NewFromEnv starts from Default and applies any PIZZACO_* variables.
// Malformed values are reported rather than silently ignored.
func NewFromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvShopName); v != "" {
		cfg.ShopName = v
	}

	if v := os.Getenv(EnvOpenHour); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvOpenHour, err)
		}
		cfg.Hours.Open = h
	}
	if v := os.Getenv(EnvCloseHour); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvCloseHour, err)
		}
		cfg.Hours.Close = h
	}

	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTick, err)
		}
		cfg.TickInterval = d
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv(EnvNoChime); v != "" {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvNoChime, err)
		}
		cfg.Chime = !off
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that can be wrong after flags and env are
// merged.
func (c *Config) Validate() error {
	if err := c.Hours.Validate(); err != nil {
		return err
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	return nil
}

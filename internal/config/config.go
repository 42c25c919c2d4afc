package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr              string
	CatalogFile       string
	Timezone          string
	ConfirmationDelay time.Duration
	ShutdownTimeout   time.Duration
}

// Parse reads flags from args. Each flag defaults to its environment
// variable, then to a built-in value.
func Parse(name string, args []string) (Config, error) {
	var cfg Config

	confirmationDelay, err := durationEnv("CONFIRMATION_DELAY", 3*time.Second)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", stringEnv("ADDR", "0.0.0.0:8080"), "Listen address")
	fs.StringVar(&cfg.CatalogFile, "catalog", os.Getenv("CATALOG_FILE"), "Voting catalog YAML file (built-in catalog when empty)")
	fs.StringVar(&cfg.Timezone, "timezone", os.Getenv("TIMEZONE"), "IANA zone used to bucket votes by hour (local time when empty)")
	fs.DurationVar(&cfg.ConfirmationDelay, "confirmation-delay", confirmationDelay, "How long the submitted notice is shown")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", shutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("listen address required (use -addr or ADDR env)")
	}
	if cfg.ConfirmationDelay <= 0 {
		return Config{}, fmt.Errorf("confirmation delay must be positive, got %s", cfg.ConfirmationDelay)
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Location resolves Timezone, defaulting to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}

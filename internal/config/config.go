// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds every setting of the application.
type Config struct {
	Store       string `env:"FINTRACK_STORE"        envDefault:"sqlite"`
	DBPath      string `env:"FINTRACK_DB_PATH"      envDefault:"fintrack.db"`
	DatabaseURL string `env:"FINTRACK_DATABASE_URL"`

	LatencyScale float64 `env:"FINTRACK_LATENCY_SCALE" envDefault:"1"`
	FaultRate    float64 `env:"FINTRACK_FAULT_RATE"    envDefault:"0.05"`

	ProvisionOnLogin   bool `env:"FINTRACK_PROVISION_ON_LOGIN"   envDefault:"true"`
	AllowRoleSwitch    bool `env:"FINTRACK_ALLOW_ROLE_SWITCH"    envDefault:"true"`
	SurfaceWriteErrors bool `env:"FINTRACK_SURFACE_WRITE_ERRORS" envDefault:"false"`

	BcryptCost int    `env:"FINTRACK_BCRYPT_COST" envDefault:"10"`
	LogLevel   string `env:"FINTRACK_LOG_LEVEL"   envDefault:"info"`
}

// Load reads the optional .env files, then the process environment. Values
// already set in the environment win over .env entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromMap parses a config from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store) {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("FINTRACK_DB_PATH is required for the sqlite store")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("FINTRACK_DATABASE_URL is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store)
	}
	if c.LatencyScale < 0 {
		return fmt.Errorf("FINTRACK_LATENCY_SCALE must not be negative, got %v", c.LatencyScale)
	}
	if c.FaultRate < 0 || c.FaultRate > 1 {
		return fmt.Errorf("FINTRACK_FAULT_RATE must be within [0, 1], got %v", c.FaultRate)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("FINTRACK_BCRYPT_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}

// Driver returns the normalized store driver name.
func (c Config) Driver() string {
	return strings.ToLower(c.Store)
}

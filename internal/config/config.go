package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all deployment settings. Values come from GYMDESK_* environment
// variables, optionally loaded from a .env file first.
type Config struct {
	Env     string `envconfig:"ENV" default:"development"`
	DBPath  string `envconfig:"DB_PATH" default:"gymdesk.db"`
	DBDebug bool   `envconfig:"DB_DEBUG" default:"false"`

	MaxOpenConns int `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int `envconfig:"MAX_IDLE_CONNS" default:"25"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@gymdesk.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"change-me-now"`
}

// IsProduction reports whether the deployment runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the SQLite connection string with the pragmas every connection
// needs: WAL for concurrency, a busy timeout so writers queue instead of
// failing, and foreign keys on.
func (c Config) DSN() string {
	return c.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
}

// Load reads configuration from .env (if present) and the environment.
// PRE: none
// POST: Returns a fully-populated Config or an error
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("gymdesk", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return c, nil
}

// Package config assembles runtime settings for the regvault CLI from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import (
	"time"

	"github.com/dmitrijs2005/regvault/internal/lockout"
)

// Config holds runtime settings for the regvault CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite vault database.
//   - DeviceKeyPath: path of the device key material file.
//   - PostgresDSN: optional DSN of a shared Postgres user directory; when
//     empty the in-process directory is used.
//   - MaxLoginAttempts: failed logins tolerated before the lockout starts.
//   - LockoutDuration: how long the lockout lasts once it starts.
type Config struct {
	DatabaseDSN      string
	DeviceKeyPath    string
	PostgresDSN      string
	MaxLoginAttempts int
	LockoutDuration  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "regvault.db"
	c.DeviceKeyPath = "regvault.key"
	c.PostgresDSN = ""
	c.MaxLoginAttempts = lockout.MaxLoginAttempts
	c.LockoutDuration = lockout.LockoutDuration
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment, after loading
// a .env file when one is present. A missing .env file is not an error.
//
// Recognized variables:
//
//	REGVAULT_DATABASE_DSN        — local SQLite database path/DSN
//	REGVAULT_DEVICE_KEY_PATH     — device key file path
//	REGVAULT_POSTGRES_DSN        — shared Postgres user directory DSN
//	REGVAULT_MAX_LOGIN_ATTEMPTS  — failed logins tolerated before lockout
//	REGVAULT_LOCKOUT_DURATION    — lockout window, e.g. "15m"
//
// Unparsable numeric or duration values are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("REGVAULT_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("REGVAULT_DEVICE_KEY_PATH"); v != "" {
		cfg.DeviceKeyPath = v
	}
	if v := os.Getenv("REGVAULT_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("REGVAULT_MAX_LOGIN_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLoginAttempts = n
		}
	}
	if v := os.Getenv("REGVAULT_LOCKOUT_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.LockoutDuration = d
		}
	}
}

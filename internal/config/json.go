package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/regvault/internal/flagx"
	"github.com/dmitrijs2005/regvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN      string         `json:"database_dsn"`
	DeviceKeyPath    string         `json:"device_key_path"`
	PostgresDSN      string         `json:"postgres_dsn"`
	MaxLoginAttempts int            `json:"max_login_attempts"`
	LockoutDuration  timex.Duration `json:"lockout_duration"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, no JSON is loaded.
// Empty JSON fields leave the existing Config values untouched, so the
// intended usage is: defaults -> parseJson -> parseEnv -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DeviceKeyPath != "" {
		cfg.DeviceKeyPath = jc.DeviceKeyPath
	}
	if jc.PostgresDSN != "" {
		cfg.PostgresDSN = jc.PostgresDSN
	}
	if jc.MaxLoginAttempts > 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}
	if jc.LockoutDuration.Duration > 0 {
		cfg.LockoutDuration = jc.LockoutDuration.Duration
	}
}

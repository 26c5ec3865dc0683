package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/regvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string     path/DSN of the local vault database (default from Config)
//	-k string     path of the device key file (default from Config)
//	-p string     DSN of the shared Postgres user directory (optional)
//	-a int        failed logins tolerated before lockout
//	-l duration   lockout window, e.g. 15m
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-p", "-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path/DSN of the local vault database")
	fs.StringVar(&cfg.DeviceKeyPath, "k", cfg.DeviceKeyPath, "path of the device key file")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "DSN of the shared Postgres user directory")
	fs.IntVar(&cfg.MaxLoginAttempts, "a", cfg.MaxLoginAttempts, "failed logins tolerated before lockout")
	fs.DurationVar(&cfg.LockoutDuration, "l", cfg.LockoutDuration, "lockout window")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

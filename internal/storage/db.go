package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/regvault/internal/common"
	"github.com/dmitrijs2005/regvault/internal/cryptox"
	"github.com/dmitrijs2005/regvault/internal/migrations"
	"github.com/dmitrijs2005/regvault/internal/repositories/plain"
	"github.com/dmitrijs2005/regvault/internal/repositories/secure"
	"github.com/dmitrijs2005/regvault/internal/repositories/vault"
)

// Repositories bundles the three tier repositories backed by one local
// SQLite database.
type Repositories struct {
	Secure secure.Repository
	Vault  vault.Repository
	Plain  plain.Repository
}

// RunMigrations applies the embedded goose migrations to the vault database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local SQLite database and brings its schema up to
// date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewRepositories constructs the tier repositories over the given database.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Secure: secure.NewSQLiteRepository(db),
		Vault:  vault.NewSQLiteRepository(db),
		Plain:  plain.NewSQLiteRepository(db),
	}
}

const (
	deviceKeySaltLen   = 16
	deviceKeySecretLen = 32
)

// LoadOrCreateDeviceKey reads the device key material from path, generating
// it on first run. The file holds a random salt followed by a random secret;
// the AES key sealing the secure and encrypted tiers is derived from both.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != deviceKeySaltLen+deviceKeySecretLen {
			return nil, fmt.Errorf("device key file %s has unexpected size %d", path, len(data))
		}
		return cryptox.DeriveDeviceKey(data[deviceKeySaltLen:], data[:deviceKeySaltLen]), nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read device key file: %w", err)
	}

	salt := common.GenerateRandByteArray(deviceKeySaltLen)
	secret := common.GenerateRandByteArray(deviceKeySecretLen)

	if err := os.WriteFile(path, append(append([]byte{}, salt...), secret...), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write device key file: %w", err)
	}

	return cryptox.DeriveDeviceKey(secret, salt), nil
}

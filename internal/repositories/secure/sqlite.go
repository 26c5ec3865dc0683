package secure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/regvault/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Store(ctx context.Context, service string, username, secret []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (service, username, secret) VALUES (?, ?, ?)
		ON CONFLICT(service) DO UPDATE SET username = excluded.username, secret = excluded.secret
	`, service, username, secret)
	if err != nil {
		return fmt.Errorf("failed to store credentials[%s]: %w", service, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, service string) ([]byte, []byte, error) {
	var username, secret []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT username, secret FROM credentials WHERE service = ?`, service).
		Scan(&username, &secret)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get credentials[%s]: %w", service, err)
	}
	return username, secret, nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, service string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE service = ?`, service)
	if err != nil {
		return fmt.Errorf("failed to remove credentials[%s]: %w", service, err)
	}
	return nil
}

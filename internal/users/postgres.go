package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/regvault/internal/common"
	"github.com/dmitrijs2005/regvault/internal/dbx"
)

// PostgresRepository is the shared multi-instance user directory. The unique
// index on email closes the check-then-insert race: PutIfAbsent is a single
// INSERT ... ON CONFLICT DO NOTHING statement.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            TEXT PRIMARY KEY,
//	    email         TEXT NOT NULL UNIQUE,
//	    first_name    TEXT NOT NULL DEFAULT '',
//	    last_name     TEXT NOT NULL DEFAULT '',
//	    phone         TEXT NOT NULL DEFAULT '',
//	    country       TEXT NOT NULL DEFAULT '',
//	    date_of_birth TEXT NOT NULL DEFAULT '',
//	    gender        TEXT NOT NULL DEFAULT '',
//	    address       TEXT NOT NULL DEFAULT '',
//	    city          TEXT NOT NULL DEFAULT '',
//	    postal_code   TEXT NOT NULL DEFAULT '',
//	    password_hash TEXT NOT NULL,
//	    created_at    TIMESTAMPTZ NOT NULL
//	);
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) PutIfAbsent(ctx context.Context, user *User) error {
	query := `INSERT INTO users
		(id, email, first_name, last_name, phone, country, date_of_birth,
		 gender, address, city, postal_code, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (email) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Phone,
		user.Country, user.DateOfBirth, user.Gender, user.Address, user.City,
		user.PostalCode, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrDuplicateUser
	}
	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, first_name, last_name, phone, country,
		date_of_birth, gender, address, city, postal_code, password_hash,
		created_at
		FROM users WHERE email = $1`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Phone,
		&user.Country, &user.DateOfBirth, &user.Gender, &user.Address,
		&user.City, &user.PostalCode, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE email = $1`, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

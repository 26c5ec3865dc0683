package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/regvault/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

const insertPattern = `(?s)^INSERT\s+INTO\s+users.*ON\s+CONFLICT\s+\(email\)\s+DO\s+NOTHING$`

func TestPostgres_PutIfAbsent_Inserts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertPattern).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PutIfAbsent(context.Background(), testUser("alice@x.com"))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_PutIfAbsent_ConflictIsDuplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING reports zero affected rows for a taken email.
	mock.ExpectExec(insertPattern).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.PutIfAbsent(context.Background(), testUser("alice@x.com"))
	require.ErrorIs(t, err, common.ErrDuplicateUser)
}

func TestPostgres_PutIfAbsent_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertPattern).
		WillReturnError(errors.New("db down"))

	err := repo.PutIfAbsent(context.Background(), testUser("alice@x.com"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "db error")
}

func TestPostgres_GetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "phone", "country",
		"date_of_birth", "gender", "address", "city", "postal_code",
		"password_hash", "created_at",
	}).AddRow("u1", "alice@x.com", "Alice", "Smith", "123", "NL",
		"1990-01-01", "female", "Main st 1", "Utrecht", "1234AB",
		"$argon2id$...", created)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("alice@x.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, "Alice", u.FirstName)
	require.Equal(t, "$argon2id$...", u.PasswordHash)
}

func TestPostgres_GetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("absent@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "absent@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPostgres_Remove(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("alice@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Remove(context.Background(), "alice@x.com"))
}

func TestPostgres_Clear(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+users$`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.Clear(context.Background()))
}

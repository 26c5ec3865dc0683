package plain

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "failed_attempts", "3"))

	v, err := r.Get(ctx, "failed_attempts")
	require.NoError(t, err)
	require.Equal(t, "3", v)
}

func TestGet_Absent_ReturnsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestDelete_AndIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, "", v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestMultiDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "1"))
	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Set(ctx, "c", "3"))

	require.NoError(t, r.MultiDelete(ctx, "a", "b", "missing"))

	va, err := r.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "", va)
	vb, err := r.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "", vb)
	vc, err := r.Get(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, "3", vc)
}

func TestMultiDelete_NoKeysIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, r.MultiDelete(context.Background()))
}

func TestErrorsWrapped_WhenDBClosed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get settings[k]")

	err = r.Set(ctx, "k", "v")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set settings[k]")

	err = r.Delete(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete settings[k]")

	err = r.MultiDelete(ctx, "a", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete settings")
}

package lockout

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/regvault/internal/common"
	"github.com/dmitrijs2005/regvault/internal/logging"
	"github.com/dmitrijs2005/regvault/internal/storage"

	_ "modernc.org/sqlite"
)

func setupTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := sql.Open("sqlite", "file:lockout_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (service TEXT PRIMARY KEY, username BLOB NOT NULL, secret BLOB NOT NULL);
CREATE TABLE vault (key TEXT PRIMARY KEY, value BLOB NOT NULL);
CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);
`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g := storage.NewGateway(storage.NewRepositories(db), common.GenerateRandByteArray(32), log)
	return NewTracker(g)
}

func TestRecordFailure_CountsUp(t *testing.T) {
	tr := setupTracker(t)
	ctx := context.Background()

	for i := 1; i < MaxLoginAttempts; i++ {
		st := tr.RecordFailure(ctx)
		require.Equal(t, i, st.FailedAttempts)
		require.False(t, st.Locked, "must not lock before attempt %d", MaxLoginAttempts)
	}
}

func TestRecordFailure_LocksAtMax(t *testing.T) {
	tr := setupTracker(t)
	ctx := context.Background()

	var st Status
	for i := 0; i < MaxLoginAttempts; i++ {
		st = tr.RecordFailure(ctx)
	}

	require.True(t, st.Locked)
	require.Equal(t, MaxLoginAttempts, st.FailedAttempts)
	require.Greater(t, st.LockoutEnd, time.Now().UnixMilli())

	check := tr.Check(ctx)
	require.True(t, check.Locked)
	require.Equal(t, st.LockoutEnd, check.LockoutEnd)
}

func TestCheck_LockoutExpires(t *testing.T) {
	tr := setupTracker(t)
	ctx := context.Background()

	for i := 0; i < MaxLoginAttempts; i++ {
		tr.RecordFailure(ctx)
	}
	require.True(t, tr.Check(ctx).Locked)

	// jump past the lockout window
	tr.now = func() time.Time { return time.Now().Add(LockoutDuration + time.Second) }

	st := tr.Check(ctx)
	require.False(t, st.Locked)
	require.Equal(t, MaxLoginAttempts, st.FailedAttempts)
}

func TestReset_ClearsCounterAndLockout(t *testing.T) {
	tr := setupTracker(t)
	ctx := context.Background()

	for i := 0; i < MaxLoginAttempts; i++ {
		tr.RecordFailure(ctx)
	}
	tr.Reset(ctx)

	st := tr.Check(ctx)
	require.False(t, st.Locked)
	require.Equal(t, 0, st.FailedAttempts)
	require.Equal(t, int64(0), st.LockoutEnd)
}

func TestCheck_FreshStateIsClean(t *testing.T) {
	tr := setupTracker(t)

	st := tr.Check(context.Background())
	require.False(t, st.Locked)
	require.Equal(t, 0, st.FailedAttempts)
	require.Equal(t, MaxLoginAttempts, st.Remaining)
}

func TestNewTrackerWithPolicy(t *testing.T) {
	tr := setupTracker(t)
	ctx := context.Background()

	custom := NewTrackerWithPolicy(tr.gateway, 2, time.Minute)

	st := custom.RecordFailure(ctx)
	require.False(t, st.Locked)
	require.Equal(t, 1, st.Remaining)

	st = custom.RecordFailure(ctx)
	require.True(t, st.Locked)
	require.Equal(t, 0, st.Remaining)

	// non-positive values fall back to the defaults
	def := NewTrackerWithPolicy(tr.gateway, 0, 0)
	require.Equal(t, MaxLoginAttempts, def.maxAttempts)
	require.Equal(t, LockoutDuration, def.lockoutFor)
}

// Package lockout implements login throttling: a failed-attempt counter and
// a lockout window persisted in the plain storage tier. State is
// device-global, not per-account, matching the UI contract this core was
// extracted from.
package lockout

import (
	"context"
	"time"

	"github.com/dmitrijs2005/regvault/internal/storage"
)

// Default policy, part of the documented login contract.
const (
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute
)

// Status describes the current throttling state.
type Status struct {
	FailedAttempts int
	// Remaining is the number of attempts left before the lockout
	// activates; zero while locked.
	Remaining int
	Locked    bool
	// LockoutEnd is the lockout end time in epoch milliseconds; zero when
	// not locked.
	LockoutEnd int64
}

// Tracker keeps the attempt/lockout bookkeeping. The counter and timestamp
// live in the best-effort tier, so recording is never fatal to the
// surrounding login flow.
type Tracker struct {
	gateway     *storage.Gateway
	maxAttempts int
	lockoutFor  time.Duration
	now         func() time.Time
}

func NewTracker(gateway *storage.Gateway) *Tracker {
	return NewTrackerWithPolicy(gateway, MaxLoginAttempts, LockoutDuration)
}

// NewTrackerWithPolicy builds a tracker with an explicit attempt budget and
// lockout window. Non-positive values fall back to the defaults.
func NewTrackerWithPolicy(gateway *storage.Gateway, maxAttempts int, lockoutFor time.Duration) *Tracker {
	if maxAttempts <= 0 {
		maxAttempts = MaxLoginAttempts
	}
	if lockoutFor <= 0 {
		lockoutFor = LockoutDuration
	}
	return &Tracker{gateway: gateway, maxAttempts: maxAttempts, lockoutFor: lockoutFor, now: time.Now}
}

func (t *Tracker) remaining(attempts int) int {
	if r := t.maxAttempts - attempts; r > 0 {
		return r
	}
	return 0
}

// RecordFailure increments the failed-attempt counter and activates the
// lockout once the counter reaches the attempt budget. It returns the
// updated status.
func (t *Tracker) RecordFailure(ctx context.Context) Status {
	attempts := t.gateway.GetFailedAttempts(ctx) + 1
	t.gateway.StoreFailedAttempts(ctx, attempts)

	st := Status{FailedAttempts: attempts, Remaining: t.remaining(attempts)}
	if attempts >= t.maxAttempts {
		st.Locked = true
		st.LockoutEnd = t.now().Add(t.lockoutFor).UnixMilli()
		t.gateway.StoreLockoutTime(ctx, st.LockoutEnd)
	}
	return st
}

// Reset clears the counter and the lockout window. Called after a
// successful login and on explicit unlock.
func (t *Tracker) Reset(ctx context.Context) {
	t.gateway.StoreFailedAttempts(ctx, 0)
	t.gateway.StoreLockoutTime(ctx, 0)
}

// Check returns the current status. A lockout is active iff the stored end
// timestamp is set and still in the future; an expired lockout is reported
// as unlocked.
func (t *Tracker) Check(ctx context.Context) Status {
	attempts := t.gateway.GetFailedAttempts(ctx)
	end := t.gateway.GetLockoutTime(ctx)

	if end != 0 && t.now().UnixMilli() < end {
		return Status{FailedAttempts: attempts, Locked: true, LockoutEnd: end}
	}
	return Status{FailedAttempts: attempts, Remaining: t.remaining(attempts)}
}

// Package storage implements the layered persistence gateway: one uniform
// surface of semantic operations mapped onto three storage tiers with
// different security and failure-policy characteristics.
//
// Failure policy, preserved from the original contract:
//   - reads soft-fail on every tier: a failed read is logged and reported as
//     "absent", never as an error;
//   - writes strict-fail on the secure-credential and encrypted-record
//     tiers: the error is surfaced to the caller;
//   - writes soft-fail on the plain tier: the error is logged and absorbed,
//     which is why the draft and counter methods return nothing.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/regvault/internal/cryptox"
	"github.com/dmitrijs2005/regvault/internal/logging"
	"github.com/dmitrijs2005/regvault/internal/repositories/plain"
	"github.com/dmitrijs2005/regvault/internal/repositories/secure"
	"github.com/dmitrijs2005/regvault/internal/repositories/vault"
	"github.com/dmitrijs2005/regvault/internal/users"
)

// Credentials is the email/password pair held in the secure tier.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Draft is a partially filled registration form. No validation is applied at
// storage time; it is overwritten, not merged, on each save.
type Draft map[string]any

// Gateway maps semantic storage operations to the correct tier. Callers
// never address tiers by name.
type Gateway struct {
	secure secure.Repository
	vault  vault.Repository
	plain  plain.Repository
	key    []byte
	log    logging.Logger
}

func NewGateway(repos *Repositories, deviceKey []byte, log logging.Logger) *Gateway {
	return &Gateway{
		secure: repos.Secure,
		vault:  repos.Vault,
		plain:  repos.Plain,
		key:    deviceKey,
		log:    log.With("component", "storage"),
	}
}

// ---- secure-credential tier ----

// StoreCredentials seals and stores the credential pair. Strict-fail.
func (g *Gateway) StoreCredentials(ctx context.Context, creds Credentials) error {
	sealedEmail, err := cryptox.Seal([]byte(creds.Email), g.key)
	if err != nil {
		return fmt.Errorf("failed to store credentials securely: %w", err)
	}
	sealedPassword, err := cryptox.Seal([]byte(creds.Password), g.key)
	if err != nil {
		return fmt.Errorf("failed to store credentials securely: %w", err)
	}

	if err := g.secure.Store(ctx, ServiceName, sealedEmail, sealedPassword); err != nil {
		return fmt.Errorf("failed to store credentials securely: %w", err)
	}
	return nil
}

// GetCredentials returns the stored credential pair, or nil when absent or
// unreadable.
func (g *Gateway) GetCredentials(ctx context.Context) *Credentials {
	sealedEmail, sealedPassword, err := g.secure.Get(ctx, ServiceName)
	if err != nil {
		g.log.Error(ctx, "error retrieving credentials", "error", err)
		return nil
	}
	if sealedEmail == nil {
		return nil
	}

	email, err := cryptox.Open(sealedEmail, g.key)
	if err != nil {
		g.log.Error(ctx, "error unsealing credentials", "error", err)
		return nil
	}
	password, err := cryptox.Open(sealedPassword, g.key)
	if err != nil {
		g.log.Error(ctx, "error unsealing credentials", "error", err)
		return nil
	}

	return &Credentials{Email: string(email), Password: string(password)}
}

// RemoveCredentials deletes the credential pair. Soft-fail.
func (g *Gateway) RemoveCredentials(ctx context.Context) {
	if err := g.secure.Remove(ctx, ServiceName); err != nil {
		g.log.Error(ctx, "error removing credentials", "error", err)
	}
}

// ---- encrypted-record tier ----

// StoreUserData seals and stores the user record. Strict-fail.
func (g *Gateway) StoreUserData(ctx context.Context, user *users.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to store user data: %w", err)
	}

	sealed, err := cryptox.Seal(data, g.key)
	if err != nil {
		return fmt.Errorf("failed to store user data: %w", err)
	}

	if err := g.vault.Set(ctx, KeyUserData, sealed); err != nil {
		return fmt.Errorf("failed to store user data: %w", err)
	}
	return nil
}

// GetUserData returns the stored user record, or nil when absent or
// unreadable.
func (g *Gateway) GetUserData(ctx context.Context) *users.User {
	sealed, err := g.vault.Get(ctx, KeyUserData)
	if err != nil {
		g.log.Error(ctx, "error retrieving user data", "error", err)
		return nil
	}
	if sealed == nil {
		return nil
	}

	data, err := cryptox.Open(sealed, g.key)
	if err != nil {
		g.log.Error(ctx, "error unsealing user data", "error", err)
		return nil
	}

	var user users.User
	if err := json.Unmarshal(data, &user); err != nil {
		g.log.Error(ctx, "error decoding user data", "error", err)
		return nil
	}
	return &user
}

// StoreSessionToken seals and stores the session token. Strict-fail.
func (g *Gateway) StoreSessionToken(ctx context.Context, token string) error {
	sealed, err := cryptox.Seal([]byte(token), g.key)
	if err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	if err := g.vault.Set(ctx, KeySessionToken, sealed); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// GetSessionToken returns the stored session token, or "" when absent or
// unreadable.
func (g *Gateway) GetSessionToken(ctx context.Context) string {
	sealed, err := g.vault.Get(ctx, KeySessionToken)
	if err != nil {
		g.log.Error(ctx, "error retrieving session token", "error", err)
		return ""
	}
	if sealed == nil {
		return ""
	}

	token, err := cryptox.Open(sealed, g.key)
	if err != nil {
		g.log.Error(ctx, "error unsealing session token", "error", err)
		return ""
	}
	return string(token)
}

// ---- plain tier ----

// StoreRegistrationDraft overwrites the registration draft. Soft-fail.
func (g *Gateway) StoreRegistrationDraft(ctx context.Context, draft Draft) {
	data, err := json.Marshal(draft)
	if err != nil {
		g.log.Error(ctx, "error encoding registration draft", "error", err)
		return
	}
	if err := g.plain.Set(ctx, KeyRegistrationDraft, string(data)); err != nil {
		g.log.Error(ctx, "error storing registration draft", "error", err)
	}
}

// GetRegistrationDraft returns the stored draft, or nil when absent or
// unreadable.
func (g *Gateway) GetRegistrationDraft(ctx context.Context) Draft {
	data, err := g.plain.Get(ctx, KeyRegistrationDraft)
	if err != nil {
		g.log.Error(ctx, "error retrieving registration draft", "error", err)
		return nil
	}
	if data == "" {
		return nil
	}

	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		g.log.Error(ctx, "error decoding registration draft", "error", err)
		return nil
	}
	return draft
}

// ClearRegistrationDraft removes the stored draft. Soft-fail.
func (g *Gateway) ClearRegistrationDraft(ctx context.Context) {
	if err := g.plain.Delete(ctx, KeyRegistrationDraft); err != nil {
		g.log.Error(ctx, "error clearing registration draft", "error", err)
	}
}

// StoreFailedAttempts persists the failed-attempt counter. Soft-fail.
func (g *Gateway) StoreFailedAttempts(ctx context.Context, count int) {
	if err := g.plain.Set(ctx, KeyFailedAttempts, strconv.Itoa(count)); err != nil {
		g.log.Error(ctx, "error storing failed attempts", "error", err)
	}
}

// GetFailedAttempts returns the failed-attempt counter, or 0 when absent or
// unreadable.
func (g *Gateway) GetFailedAttempts(ctx context.Context) int {
	v, err := g.plain.Get(ctx, KeyFailedAttempts)
	if err != nil {
		g.log.Error(ctx, "error retrieving failed attempts", "error", err)
		return 0
	}
	if v == "" {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		g.log.Error(ctx, "error parsing failed attempts", "value", v, "error", err)
		return 0
	}
	return n
}

// StoreLockoutTime persists the lockout end timestamp in epoch milliseconds.
// Storing 0 clears the lockout. Soft-fail.
func (g *Gateway) StoreLockoutTime(ctx context.Context, epochMillis int64) {
	if err := g.plain.Set(ctx, KeyLockoutTime, strconv.FormatInt(epochMillis, 10)); err != nil {
		g.log.Error(ctx, "error storing lockout time", "error", err)
	}
}

// GetLockoutTime returns the lockout end timestamp in epoch milliseconds, or
// 0 when no lockout is recorded.
func (g *Gateway) GetLockoutTime(ctx context.Context) int64 {
	v, err := g.plain.Get(ctx, KeyLockoutTime)
	if err != nil {
		g.log.Error(ctx, "error retrieving lockout time", "error", err)
		return 0
	}
	if v == "" {
		return 0
	}

	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		g.log.Error(ctx, "error parsing lockout time", "value", v, "error", err)
		return 0
	}
	return ms
}

// ---- composite ----

// ClearAllData removes the credential pair, clears the encrypted-record tier
// and multi-removes the plain-tier keys. Each step is independently guarded:
// a failing step is recorded but never prevents the next one from being
// attempted. The joined error of all failing steps is returned.
func (g *Gateway) ClearAllData(ctx context.Context) error {
	var errs []error

	if err := g.secure.Remove(ctx, ServiceName); err != nil {
		g.log.Error(ctx, "error removing credentials", "error", err)
		errs = append(errs, err)
	}

	if err := g.vault.Clear(ctx); err != nil {
		g.log.Error(ctx, "error clearing encrypted records", "error", err)
		errs = append(errs, err)
	}

	if err := g.plain.MultiDelete(ctx, KeyRegistrationDraft, KeyFailedAttempts, KeyLockoutTime); err != nil {
		g.log.Error(ctx, "error clearing settings", "error", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

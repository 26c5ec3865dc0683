// Package auth implements the credential and session manager: registration,
// login, session verification and logout over the injected user directory
// and the layered persistence gateway.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/regvault/internal/common"
	"github.com/dmitrijs2005/regvault/internal/cryptox"
	"github.com/dmitrijs2005/regvault/internal/logging"
	"github.com/dmitrijs2005/regvault/internal/storage"
	"github.com/dmitrijs2005/regvault/internal/users"
)

// Session pairs a verified user record with its bearer token.
type Session struct {
	User  *users.User
	Token string
}

// SessionStatus is the result of a presence-based session check.
type SessionStatus struct {
	Valid bool
	User  *users.User
}

// Service is the credential and session manager. It owns the derivation of
// ids, hashes and tokens and delegates all durability to the gateway; it
// never addresses storage tiers directly.
type Service struct {
	directory users.Repository
	gateway   *storage.Gateway
	validate  *validator.Validate
	log       logging.Logger
	now       func() time.Time
}

func NewService(directory users.Repository, gateway *storage.Gateway, log logging.Logger) *Service {
	return &Service{
		directory: directory,
		gateway:   gateway,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log.With("component", "auth"),
		now:       time.Now,
	}
}

// Register creates a new identity. The directory insert is atomic
// (put-if-absent), then the storage sub-operations run strictly in sequence:
// credentials, user record, session token, draft clear. There is no
// compensating rollback: a storage failure after the directory insert leaves
// the directory entry in place.
func (s *Service) Register(ctx context.Context, form RegistrationForm) (*users.User, string, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	email := users.NormalizeEmail(form.Email)

	hash, err := cryptox.HashPassword([]byte(form.Password))
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:           uuid.NewString(),
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        email,
		Phone:        form.Phone,
		Country:      form.Country,
		DateOfBirth:  form.DateOfBirth,
		Gender:       form.Gender,
		Address:      form.Address,
		City:         form.City,
		PostalCode:   form.PostalCode,
		CreatedAt:    s.now(),
		PasswordHash: hash,
	}

	if err := s.directory.PutIfAbsent(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.gateway.StoreCredentials(ctx, storage.Credentials{Email: email, Password: form.Password}); err != nil {
		return nil, "", err
	}

	if err := s.gateway.StoreUserData(ctx, user.Redacted()); err != nil {
		return nil, "", err
	}

	token := newSessionToken(s.now())
	if err := s.gateway.StoreSessionToken(ctx, token); err != nil {
		return nil, "", err
	}

	s.gateway.ClearRegistrationDraft(ctx)

	s.log.Info(ctx, "user registered", "email", email)
	return user.Redacted(), token, nil
}

// Login authenticates the credential pair. Unknown email and wrong password
// are indistinguishable to the caller. Login does not touch the lockout
// counters; resetting them after success is the caller's responsibility.
func (s *Service) Login(ctx context.Context, creds Credentials) (*users.User, string, error) {
	email := users.NormalizeEmail(creds.Email)

	user, err := s.directory.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrInternal
	}

	ok, err := cryptox.VerifyPassword([]byte(creds.Password), user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "error verifying password", "error", err)
		return nil, "", common.ErrInternal
	}
	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	if err := s.gateway.StoreCredentials(ctx, storage.Credentials{Email: email, Password: creds.Password}); err != nil {
		return nil, "", err
	}

	token := newSessionToken(s.now())
	if err := s.gateway.StoreSessionToken(ctx, token); err != nil {
		return nil, "", err
	}

	redacted := user.Redacted()
	if err := s.gateway.StoreUserData(ctx, redacted); err != nil {
		return nil, "", err
	}

	s.log.Info(ctx, "user logged in", "email", email)
	return redacted, token, nil
}

// CheckSession reports whether a valid session is present: both the token
// and the stored user record must exist. No signature or expiry check is
// performed, and storage read failures yield an invalid session, never an
// error.
func (s *Service) CheckSession(ctx context.Context) SessionStatus {
	token := s.gateway.GetSessionToken(ctx)
	user := s.gateway.GetUserData(ctx)

	if token != "" && user != nil {
		return SessionStatus{Valid: true, User: user}
	}
	return SessionStatus{}
}

// VerifySession returns the persisted session, or nil when either the token
// or the user record is missing.
func (s *Service) VerifySession(ctx context.Context) *Session {
	token := s.gateway.GetSessionToken(ctx)
	user := s.gateway.GetUserData(ctx)

	if token != "" && user != nil {
		return &Session{User: user, Token: token}
	}
	return nil
}

// Logout wipes all persisted device state in one composite operation. Every
// step is attempted; the joined error of the failing steps is returned. The
// user directory itself is not touched: registered identities survive a
// logout.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.gateway.ClearAllData(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "user logged out")
	return nil
}

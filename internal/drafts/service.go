// Package drafts manages the registration draft: an unsubmitted, partially
// filled registration form persisted so an interrupted registration can be
// resumed. At most one draft exists; saving overwrites, never merges.
package drafts

import (
	"context"

	"github.com/dmitrijs2005/regvault/internal/storage"
)

type Service struct {
	gateway *storage.Gateway
}

func NewService(gateway *storage.Gateway) *Service {
	return &Service{gateway: gateway}
}

// Save overwrites the stored draft with the given form fields. No field
// validation is applied at storage time; the draft lives in the best-effort
// tier, so saving never fails the caller.
func (s *Service) Save(ctx context.Context, draft storage.Draft) {
	s.gateway.StoreRegistrationDraft(ctx, draft)
}

// Load returns the stored draft, or nil when none exists.
func (s *Service) Load(ctx context.Context) storage.Draft {
	return s.gateway.GetRegistrationDraft(ctx)
}

// Clear discards the stored draft. Called after a successful submission and
// on explicit reset.
func (s *Service) Clear(ctx context.Context) {
	s.gateway.ClearRegistrationDraft(ctx)
}

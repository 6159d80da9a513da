package service

import (
	"context"
	"errors"

	"github.com/chirpy-app/chirpy/internal/chirpy/store"
	"github.com/chirpy-app/chirpy/pkg/slogx"
)

// EventUserUpgraded is the only payment-provider event this service acts on.
const EventUserUpgraded = "user.upgraded"

// WebhookService applies payment-provider (Polka) events. API-key checking
// happens at the HTTP layer; by the time an event reaches here the caller is
// trusted.
type WebhookService struct {
	Store store.Store
}

// HandleEvent processes a webhook event. Unrecognized events are acknowledged
// without any state change so the provider stops retrying them.
func (s *WebhookService) HandleEvent(ctx context.Context, event, userID string) error {
	if event != EventUserUpgraded {
		slogx.FromContext(ctx).Debug("ignoring webhook event", "event", event)
		return nil
	}

	if err := s.Store.Users().UpgradeUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Package webhook ingests push events from the commerce platform and applies
// them to the members table.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/pkg/plan"
)

// MemberStore is the slice of the members repository this service needs.
type MemberStore interface {
	Upsert(ctx context.Context, m *domain.Member) error
	Deactivate(ctx context.Context, email string) error
}

type Service interface {
	// HandleEvent applies one webhook event. A nil return is an ack; the
	// upstream sender retries on anything else, so intentionally ignored
	// event types also return nil.
	HandleEvent(ctx context.Context, eventType string, data domain.WebhookData) error
}

type service struct {
	store MemberStore
	now   func() time.Time
}

func NewService(store MemberStore) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) HandleEvent(ctx context.Context, eventType string, data domain.WebhookData) error {
	email := domain.NormalizeEmail(data.Email)
	if email == "" {
		return fmt.Errorf("webhook payload has no email: %w", domain.ErrBadRequest)
	}

	switch eventType {
	case "membership.created", "membership.updated", "membership.changed":
		m := s.memberFromEvent(email, data)
		if err := s.store.Upsert(ctx, &m); err != nil {
			return fmt.Errorf("upsert member %s: %w", email, err)
		}
		slog.Info("webhook upserted member", "event", eventType, "email", email, "tier", m.Tier)
		return nil

	case "membership.cancelled", "membership.expired":
		// Missing record is a no-op: cancellations can arrive for members
		// we never saw.
		if err := s.store.Deactivate(ctx, email); err != nil {
			return fmt.Errorf("deactivate member %s: %w", email, err)
		}
		slog.Info("webhook deactivated member", "event", eventType, "email", email)
		return nil

	default:
		slog.Info("unhandled webhook event", "event", eventType)
		return nil
	}
}

func (s *service) memberFromEvent(email string, data domain.WebhookData) domain.Member {
	m := domain.Member{
		Email:    email,
		Tier:     plan.FreeTier,
		MemberID: data.ID,
		Nickname: data.Nickname,
	}
	if sub := data.Subscription; sub != nil {
		m.Active = domain.ActiveStatus(sub.Type)
		if sub.Variant != nil {
			m.Tier = plan.ResolveTier(sub.Variant.TierID)
			renewal := plan.FormatDate(plan.RenewalDate(s.now(), sub.Variant.Interval))
			m.RenewalDate = &renewal
		}
	}
	return m
}

// Package sync reconciles the local members table against the full membership
// list held by the commerce platform.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/quant-backend/internal/pkg/plan"
)

// MemberLister is the slice of the commerce API this service needs.
type MemberLister interface {
	ListMembers(ctx context.Context) ([]fourthwall.Member, error)
}

// MemberStore is the slice of the members repository this service needs.
type MemberStore interface {
	Upsert(ctx context.Context, m *domain.Member) error
}

type Service interface {
	// SyncAll pulls the full membership list and upserts each record,
	// returning the records actually persisted. An upstream failure returns
	// an empty result with a wrapped ErrUpstream — "sync did not happen",
	// not "zero members exist".
	SyncAll(ctx context.Context) ([]domain.Member, error)
}

type service struct {
	api   MemberLister
	store MemberStore
}

func NewService(api MemberLister, store MemberStore) Service {
	return &service{api: api, store: store}
}

func (s *service) SyncAll(ctx context.Context) ([]domain.Member, error) {
	upstream, err := s.api.ListMembers(ctx)
	if err != nil {
		slog.Error("failed to fetch members", "err", err)
		return nil, fmt.Errorf("fetch members: %w", err)
	}

	synced := make([]domain.Member, 0, len(upstream))
	for i := range upstream {
		m := fromUpstream(&upstream[i])
		// One failing record must not abort the batch.
		if err := s.store.Upsert(ctx, &m); err != nil {
			slog.Error("failed to upsert member", "email", m.Email, "err", err)
			continue
		}
		synced = append(synced, m)
	}

	slog.Info("synced members", "persisted", len(synced), "fetched", len(upstream))
	return synced, nil
}

// fromUpstream maps a commerce-platform membership to the local record shape.
// A missing email maps to the "unknown" literal so the record count is
// preserved.
func fromUpstream(m *fourthwall.Member) domain.Member {
	email := domain.NormalizeEmail(m.Email)
	if email == "" {
		email = domain.UnknownEmail
	}

	rec := domain.Member{
		Email: email,
		Tier:  plan.FreeTier,
	}
	if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil {
		rec.MemberID = &id
	}
	if m.Nickname != "" {
		nick := m.Nickname
		rec.Nickname = &nick
	}
	if sub := m.Subscription; sub != nil {
		rec.Active = domain.ActiveStatus(sub.Type)
		if sub.Variant != nil {
			rec.Tier = plan.ResolveTier(sub.Variant.TierID)
		}
	}
	return rec
}

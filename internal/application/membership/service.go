// Package membership serves read-side membership checks.
package membership

import (
	"context"
	"fmt"

	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/quant-backend/internal/pkg/plan"
)

// MemberStore is the slice of the members repository this service needs.
type MemberStore interface {
	Get(ctx context.Context, email string) (*domain.Member, error)
}

// MemberFetcher is the slice of the commerce API this service needs.
type MemberFetcher interface {
	GetMember(ctx context.Context, memberID string) (*fourthwall.Member, error)
}

type Service interface {
	// Check returns the stored membership for an email, or ErrNotFound.
	Check(ctx context.Context, email string) (*domain.Member, error)
	// VerifyByMemberID resolves a membership live from the commerce API by
	// its external member ID, without touching the local store.
	VerifyByMemberID(ctx context.Context, memberID string) (*domain.Member, error)
}

type service struct {
	store MemberStore
	api   MemberFetcher
}

func NewService(store MemberStore, api MemberFetcher) Service {
	return &service{store: store, api: api}
}

func (s *service) Check(ctx context.Context, email string) (*domain.Member, error) {
	return s.store.Get(ctx, domain.NormalizeEmail(email))
}

func (s *service) VerifyByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	m, err := s.api.GetMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("fetch member %s: %w", memberID, err)
	}

	rec := &domain.Member{
		Email: domain.NormalizeEmail(m.Email),
		Tier:  plan.FreeTier,
	}
	if rec.Email == "" {
		rec.Email = domain.UnknownEmail
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
	return rec, nil
}

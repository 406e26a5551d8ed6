// Package verification issues and redeems one-time email codes and resolves
// the caller's membership tier on redemption.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/quant-backend/internal/pkg/code"
	"github.com/quant-backend/internal/pkg/id"
	"github.com/quant-backend/internal/pkg/plan"
)

const codeTTL = 15 * time.Minute

// CodeStore is the slice of the verifications repository this service needs.
type CodeStore interface {
	Put(ctx context.Context, v *domain.Verification) error
	Latest(ctx context.Context, email string) (*domain.Verification, error)
}

// MemberStore is the slice of the members repository this service needs.
type MemberStore interface {
	Get(ctx context.Context, email string) (*domain.Member, error)
	Upsert(ctx context.Context, m *domain.Member) error
}

// InstallStore records install bindings. Best-effort only.
type InstallStore interface {
	Put(ctx context.Context, b *domain.InstallBinding) error
}

// CustomerLookup is the slice of the commerce API this service needs.
type CustomerLookup interface {
	LookupCustomer(ctx context.Context, email string) (*fourthwall.Customer, error)
}

// Mailer sends the verification code email.
type Mailer interface {
	SendEmail(to, subject, html string) error
}

type Service interface {
	// IssueCode generates a fresh code, persists it and emails it. A send
	// failure is surfaced: the user cannot proceed without the code.
	IssueCode(ctx context.Context, email string) error
	// RedeemCode validates the latest code for the email, then resolves the
	// caller's membership: stored record, live API lookup, or a Free-tier
	// default. Every valid redemption produces a membership result.
	RedeemCode(ctx context.Context, email, codeValue, installID string) (*domain.VerifiedMembership, error)
}

type service struct {
	codes    CodeStore
	members  MemberStore
	installs InstallStore
	api      CustomerLookup
	mailer   Mailer
	now      func() time.Time
}

func NewService(codes CodeStore, members MemberStore, installs InstallStore, api CustomerLookup, mailer Mailer) Service {
	return &service{
		codes:    codes,
		members:  members,
		installs: installs,
		api:      api,
		mailer:   mailer,
		now:      time.Now,
	}
}

func (s *service) IssueCode(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email: %w", domain.ErrBadRequest)
	}

	c, err := code.New()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	v := &domain.Verification{
		Email:          email,
		VerificationID: id.New(),
		Code:           c,
		IssuedAt:       now.Format(time.RFC3339),
		ExpiresAt:      now.Add(codeTTL).Unix(),
	}
	if err := s.codes.Put(ctx, v); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}

	html := fmt.Sprintf("<p>Your verification code is:</p><h2>%s</h2>", c)
	if err := s.mailer.SendEmail(email, "Your Quant Trading Verification Code", html); err != nil {
		// The persisted code stays behind but is superseded by any retry;
		// the caller must see the delivery failure.
		return fmt.Errorf("send verification email: %w", err)
	}
	slog.Info("issued verification code", "email", email)
	return nil
}

func (s *service) RedeemCode(ctx context.Context, email, codeValue, installID string) (*domain.VerifiedMembership, error) {
	email = domain.NormalizeEmail(email)

	v, err := s.codes.Latest(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalidCode()
		}
		return nil, fmt.Errorf("load verification code: %w", err)
	}
	// Expiry and mismatch collapse into one message so the response doesn't
	// reveal which check failed.
	if s.now().Unix() > v.ExpiresAt || v.Code != codeValue {
		return nil, invalidCode()
	}

	m, err := s.members.Get(ctx, email)
	switch {
	case err == nil:
		// Authoritative path: the webhook or sync already stored the record.
	case errors.Is(err, domain.ErrNotFound):
		m, err = s.resolveUnknownMember(ctx, email)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load member: %w", err)
	}

	s.bindInstall(ctx, email, installID)

	return &domain.VerifiedMembership{
		Email:       m.Email,
		Tier:        m.Tier,
		RenewalDate: m.RenewalDate,
		MemberID:    m.MemberID,
		Nickname:    m.Nickname,
	}, nil
}

// resolveUnknownMember handles redemption for an email with no stored record:
// try a live customer lookup, and fall back to a Free-tier record when the
// lookup misses or the API is down. Webhook lag must not fail a valid code.
func (s *service) resolveUnknownMember(ctx context.Context, email string) (*domain.Member, error) {
	customer, err := s.api.LookupCustomer(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("customer lookup failed, falling back to free tier", "email", email, "err", err)
		}
		return s.upsertFreeMember(ctx, email)
	}

	m := &domain.Member{
		Email: email,
		Tier:  plan.FreeTier,
	}
	if memberID, parseErr := strconv.ParseInt(customer.ID, 10, 64); parseErr == nil {
		m.MemberID = &memberID
	}
	if customer.Nickname != "" {
		nick := customer.Nickname
		m.Nickname = &nick
	}
	if sub := customer.Subscription; sub != nil {
		m.Active = domain.ActiveStatus(sub.Type)
		if sub.Variant != nil {
			m.Tier = plan.ResolveTier(sub.Variant.TierID)
			renewal := plan.FormatDate(plan.RenewalDate(s.subscriptionAnchor(sub), sub.Variant.Interval))
			m.RenewalDate = &renewal
		}
	}
	if err := s.members.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("store resolved member: %w", err)
	}
	return m, nil
}

func (s *service) upsertFreeMember(ctx context.Context, email string) (*domain.Member, error) {
	renewal := plan.FormatDate(s.now().UTC().AddDate(1, 0, 0))
	m := &domain.Member{
		Email:       email,
		Tier:        plan.FreeTier,
		Active:      false,
		RenewalDate: &renewal,
	}
	if err := s.members.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("store free member: %w", err)
	}
	return m, nil
}

// subscriptionAnchor is the renewal anchor for a live-resolved customer: the
// subscription creation time, or now when the timestamp is absent/unparseable.
func (s *service) subscriptionAnchor(sub *fourthwall.Subscription) time.Time {
	if sub.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, sub.CreatedAt); err == nil {
			return t
		}
	}
	return s.now()
}

// bindInstall is best-effort: a failed write is logged and never changes the
// redemption response.
func (s *service) bindInstall(ctx context.Context, email, installID string) {
	if installID == "" {
		return
	}
	b := &domain.InstallBinding{
		BindingID: id.New(),
		Email:     email,
		InstallID: installID,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.installs.Put(ctx, b); err != nil {
		slog.Warn("failed to record install binding", "email", email, "install_id", installID, "err", err)
	}
}

func invalidCode() error {
	return fmt.Errorf("invalid or expired code: %w", domain.ErrUnauthorized)
}

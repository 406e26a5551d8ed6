package membership

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/infrastructure/fourthwall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMemberStore struct{ mock.Mock }

func (m *mockMemberStore) Get(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if v, _ := args.Get(0).(*domain.Member); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFetcher struct{ mock.Mock }

func (m *mockFetcher) GetMember(ctx context.Context, memberID string) (*fourthwall.Member, error) {
	args := m.Called(ctx, memberID)
	if v, _ := args.Get(0).(*fourthwall.Member); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheck_NormalizesEmail(t *testing.T) {
	store := &mockMemberStore{}
	store.On("Get", mock.Anything, "x@y.com").Return(&domain.Member{Email: "x@y.com", Tier: "Pro", Active: true}, nil)

	svc := NewService(store, nil)
	m, err := svc.Check(context.Background(), "  X@Y.COM ")

	require.NoError(t, err)
	assert.Equal(t, "Pro", m.Tier)
	store.AssertExpectations(t)
}

func TestCheck_Missing_ReturnsNotFound(t *testing.T) {
	store := &mockMemberStore{}
	store.On("Get", mock.Anything, "x@y.com").Return(nil, fmt.Errorf("member: %w", domain.ErrNotFound))

	svc := NewService(store, nil)
	_, err := svc.Check(context.Background(), "x@y.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerifyByMemberID_ResolvesTierAndStatus(t *testing.T) {
	api := &mockFetcher{}
	api.On("GetMember", mock.Anything, "42").Return(&fourthwall.Member{
		ID:       "42",
		Email:    "Trader@Example.com",
		Nickname: "trader",
		Subscription: &fourthwall.Subscription{
			Type:    "SUSPENDED",
			Variant: &fourthwall.Variant{TierID: "mt_28247"},
		},
	}, nil)

	svc := NewService(nil, api)
	m, err := svc.VerifyByMemberID(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "trader@example.com", m.Email)
	assert.Equal(t, "Elite", m.Tier)
	assert.True(t, m.Active)
	require.NotNil(t, m.Nickname)
	assert.Equal(t, "trader", *m.Nickname)
}

func TestVerifyByMemberID_UpstreamFailure(t *testing.T) {
	api := &mockFetcher{}
	api.On("GetMember", mock.Anything, "42").Return(nil, fmt.Errorf("status 503: %w", domain.ErrUpstream))

	svc := NewService(nil, api)
	_, err := svc.VerifyByMemberID(context.Background(), "42")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

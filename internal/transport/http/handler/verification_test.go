package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quant-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockVerificationSvc struct{ mock.Mock }

func (m *mockVerificationSvc) IssueCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockVerificationSvc) RedeemCode(ctx context.Context, email, code, installID string) (*domain.VerifiedMembership, error) {
	args := m.Called(ctx, email, code, installID)
	if v, _ := args.Get(0).(*domain.VerifiedMembership); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// --- SendCode ---

func TestSendCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IssueCode", mock.Anything, "a@b.com").Return(nil)

	rec := postJSON(t, NewVerificationHandler(svc).SendCode, map[string]string{"email": "a@b.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var env SuccessEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
}

func TestSendCode_MissingEmail_400(t *testing.T) {
	svc := &mockVerificationSvc{}
	rec := postJSON(t, NewVerificationHandler(svc).SendCode, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "IssueCode", mock.Anything, mock.Anything)
}

func TestSendCode_InvalidEmail_400(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IssueCode", mock.Anything, "nope").Return(fmt.Errorf("invalid email: %w", domain.ErrBadRequest))

	rec := postJSON(t, NewVerificationHandler(svc).SendCode, map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendCode_DeliveryFailure_500(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IssueCode", mock.Anything, "a@b.com").Return(errors.New("send verification email: timeout"))

	rec := postJSON(t, NewVerificationHandler(svc).SendCode, map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// --- VerifyCode ---

func TestVerifyCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	renewal := "2026-08-31"
	svc.On("RedeemCode", mock.Anything, "a@b.com", "123456", "install-1").Return(&domain.VerifiedMembership{
		Email:       "a@b.com",
		Tier:        "Free",
		RenewalDate: &renewal,
	}, nil)

	rec := postJSON(t, NewVerificationHandler(svc).VerifyCode, map[string]string{
		"email": "a@b.com", "code": "123456", "installId": "install-1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var env VerifiedMembershipEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "a@b.com", env.Email)
	assert.Equal(t, "Free", env.Level)
	require.NotNil(t, env.RenewDate)
	assert.Equal(t, renewal, *env.RenewDate)
	assert.Nil(t, env.MemberID)
}

func TestVerifyCode_MissingFields_400(t *testing.T) {
	svc := &mockVerificationSvc{}
	rec := postJSON(t, NewVerificationHandler(svc).VerifyCode, map[string]string{"email": "a@b.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "RedeemCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyCode_InvalidCode_401_GenericMessage(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RedeemCode", mock.Anything, "a@b.com", "000000", "").
		Return(nil, fmt.Errorf("invalid or expired code: %w", domain.ErrUnauthorized))

	rec := postJSON(t, NewVerificationHandler(svc).VerifyCode, map[string]string{
		"email": "a@b.com", "code": "000000",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "invalid or expired code", env.Error)
}

func TestVerifyCode_StoreFailure_500(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RedeemCode", mock.Anything, "a@b.com", "123456", "").
		Return(nil, errors.New("load member: table unavailable"))

	rec := postJSON(t, NewVerificationHandler(svc).VerifyCode, map[string]string{
		"email": "a@b.com", "code": "123456",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

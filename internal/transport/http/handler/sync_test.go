package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quant-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSyncSvc struct{ mock.Mock }

func (m *mockSyncSvc) SyncAll(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if v, _ := args.Get(0).([]domain.Member); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestTrigger_HappyPath_PlainTextCount(t *testing.T) {
	svc := &mockSyncSvc{}
	svc.On("SyncAll", mock.Anything).Return([]domain.Member{
		{Email: "a@b.com"}, {Email: "c@d.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sync-members", nil)
	rec := httptest.NewRecorder()
	NewSyncHandler(svc).Trigger(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Synced 2 members", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestTrigger_UpstreamFailure_500(t *testing.T) {
	svc := &mockSyncSvc{}
	svc.On("SyncAll", mock.Anything).Return(nil, fmt.Errorf("fetch members: %w", domain.ErrUpstream))

	req := httptest.NewRequest(http.MethodGet, "/sync-members", nil)
	rec := httptest.NewRecorder()
	NewSyncHandler(svc).Trigger(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

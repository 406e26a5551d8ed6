package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quant-backend/internal/application/webhook"
	"github.com/quant-backend/internal/domain"
)

// WebhookHandler ingests Fourthwall membership webhooks.
type WebhookHandler struct {
	svc webhook.Service
}

func NewWebhookHandler(svc webhook.Service) *WebhookHandler { return &WebhookHandler{svc: svc} }

func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var event domain.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.HandleEvent(r.Context(), event.Type, event.Data); err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ReceivedEnvelope{Received: true})
}

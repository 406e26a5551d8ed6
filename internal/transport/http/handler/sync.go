package handler

import (
	"fmt"
	"net/http"

	appsync "github.com/quant-backend/internal/application/sync"
)

// SyncHandler triggers a full membership reconciliation.
type SyncHandler struct {
	svc appsync.Service
}

func NewSyncHandler(svc appsync.Service) *SyncHandler { return &SyncHandler{svc: svc} }

func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	synced, err := h.svc.SyncAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Synced %d members", len(synced))
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quant-backend/internal/application/membership"
	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/pkg/validate"
)

// MembershipHandler serves membership lookups.
type MembershipHandler struct {
	svc membership.Service
}

func NewMembershipHandler(svc membership.Service) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func (h *MembershipHandler) Check(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter required")
		return
	}
	m, err := h.svc.Check(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no membership for this email")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CheckMembershipEnvelope{Active: m.Active, Tier: m.Tier})
}

type verifyMembershipRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}

func (h *MembershipHandler) VerifyByID(w http.ResponseWriter, r *http.Request) {
	var req verifyMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.svc.VerifyByMemberID(r.Context(), req.MemberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MembershipStatusEnvelope{
		Success:  true,
		Active:   m.Active,
		Tier:     m.Tier,
		Nickname: m.Nickname,
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quant-backend/internal/application/verification"
	"github.com/quant-backend/internal/domain"
	"github.com/quant-backend/internal/pkg/validate"
)

// VerificationHandler handles the one-time-code email verification flow.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

type sendCodeRequest struct {
	Email string `json:"email" validate:"required"`
}

func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req sendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.IssueCode(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true})
}

type verifyCodeRequest struct {
	Email     string `json:"email" validate:"required"`
	Code      string `json:"code" validate:"required"`
	InstallID string `json:"installId"`
}

func (h *VerificationHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req verifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.svc.RedeemCode(r.Context(), req.Email, req.Code, req.InstallID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid or expired code")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, VerifiedMembershipEnvelope{
		Success:   true,
		Email:     m.Email,
		Level:     m.Tier,
		RenewDate: m.RenewalDate,
		MemberID:  m.MemberID,
		Nickname:  m.Nickname,
	})
}

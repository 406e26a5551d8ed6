package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessEnvelope acknowledges an operation with no payload.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}

// ReceivedEnvelope acknowledges a webhook delivery.
type ReceivedEnvelope struct {
	Received bool `json:"received"`
}

// CheckMembershipEnvelope is the /check-membership response.
type CheckMembershipEnvelope struct {
	Active bool   `json:"active"`
	Tier   string `json:"tier"`
}

// VerifiedMembershipEnvelope is the /verify-code response.
type VerifiedMembershipEnvelope struct {
	Success   bool    `json:"success"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	RenewDate *string `json:"renewDate,omitempty"`
	MemberID  *int64  `json:"memberId,omitempty"`
	Nickname  *string `json:"nickname,omitempty"`
}

// MembershipStatusEnvelope is the /api/verify-membership response.
type MembershipStatusEnvelope struct {
	Success  bool    `json:"success"`
	Active   bool    `json:"active"`
	Tier     string  `json:"tier"`
	Nickname *string `json:"nickname,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

package domain

import "strings"

// Member is the authoritative local copy of a subscriber's membership state.
// PK: email (normalized lowercase). Records are upserted, never deleted —
// a cancelled subscription flips Active to false and keeps the row.
type Member struct {
	Email       string  `json:"email" dynamodbav:"email"`
	MemberID    *int64  `json:"member_id,omitempty" dynamodbav:"member_id"`
	Nickname    *string `json:"nickname,omitempty" dynamodbav:"nickname"`
	Tier        string  `json:"tier" dynamodbav:"tier"`
	Active      bool    `json:"active" dynamodbav:"active"`
	RenewalDate *string `json:"renewal_date,omitempty" dynamodbav:"renewal_date"` // YYYY-MM-DD
}

// UnknownEmail is stored when the commerce platform returns a member without
// an email address. Keeping the row preserves the upstream record count.
const UnknownEmail = "unknown"

// NormalizeEmail lowercases and trims an email for use as a store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ActiveStatus reports whether an upstream subscription status counts as an
// active membership. SUSPENDED subscriptions retain access while payment
// retries are in flight.
func ActiveStatus(status string) bool {
	return status == "ACTIVE" || status == "SUSPENDED"
}

// VerifiedMembership is the result of a successful code redemption.
type VerifiedMembership struct {
	Email       string  `json:"email"`
	Tier        string  `json:"level"`
	RenewalDate *string `json:"renewDate,omitempty"`
	MemberID    *int64  `json:"memberId,omitempty"`
	Nickname    *string `json:"nickname,omitempty"`
}

package domain

// Verification stores a one-time email verification code.
// PK: email, SK: verification_id (ULID — lexicographic order is issuance order,
// so the latest code for an email is the first item of a descending query).
// ExpiresAt is a Unix timestamp used as DynamoDB TTL; expiry is nevertheless
// enforced by comparison at redemption time, TTL only clears stale rows.
type Verification struct {
	Email          string `json:"email" dynamodbav:"email"`
	VerificationID string `json:"verification_id" dynamodbav:"verification_id"`
	Code           string `json:"code" dynamodbav:"code"`
	IssuedAt       string `json:"issued_at" dynamodbav:"issued_at"` // RFC3339
	ExpiresAt      int64  `json:"expires_at" dynamodbav:"expires_at"`
}

// InstallBinding records that a client installation redeemed a code for an
// email. Best-effort telemetry: writes may fail without affecting redemption.
type InstallBinding struct {
	BindingID string `json:"binding_id" dynamodbav:"binding_id"`
	Email     string `json:"email" dynamodbav:"email"`
	InstallID string `json:"install_id" dynamodbav:"install_id"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"` // RFC3339
}

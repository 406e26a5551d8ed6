package domain

// WebhookEvent is the envelope Fourthwall posts on membership state changes.
type WebhookEvent struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

// WebhookData is the payload of a membership webhook event. All fields except
// Email are optional in practice — payload shapes vary by event type.
type WebhookData struct {
	ID           *int64               `json:"id,omitempty"`
	Email        string               `json:"email"`
	Nickname     *string              `json:"nickname,omitempty"`
	Subscription *WebhookSubscription `json:"subscription,omitempty"`
}

// WebhookSubscription carries the subscription status and plan variant.
type WebhookSubscription struct {
	Type    string          `json:"type"` // ACTIVE | SUSPENDED | CANCELLED | EXPIRED
	Variant *WebhookVariant `json:"variant,omitempty"`
}

// WebhookVariant identifies the purchased plan tier and billing interval.
type WebhookVariant struct {
	TierID   string `json:"tierId"`
	Interval string `json:"interval"` // MONTHLY | YEARLY
}

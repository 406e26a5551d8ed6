// Package fourthwall is a minimal client for the Fourthwall open API.
package fourthwall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/quant-backend/internal/config"
	"github.com/quant-backend/internal/domain"
)

// Member is a membership entry as returned by the memberships endpoints.
type Member struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Nickname     string        `json:"nickname"`
	Subscription *Subscription `json:"subscription"`
}

// Customer is a storefront customer as returned by the customers endpoint.
type Customer struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Nickname     string        `json:"nickname"`
	Subscription *Subscription `json:"subscription"`
}

// Subscription carries status, plan variant and creation time.
type Subscription struct {
	Type      string   `json:"type"` // ACTIVE | SUSPENDED | CANCELLED | EXPIRED
	CreatedAt string   `json:"createdAt"`
	Variant   *Variant `json:"variant"`
}

// Variant identifies the plan tier and billing interval.
type Variant struct {
	TierID   string `json:"tierId"`
	Interval string `json:"interval"`
}

// Client talks to the Fourthwall open API with HTTP Basic credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.FourthwallBaseURL,
		username:   cfg.FourthwallUser,
		password:   cfg.FourthwallPass,
	}
}

// ListMembers fetches the full membership list.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	var page struct {
		Results []Member `json:"results"`
	}
	if err := c.get(ctx, "/memberships/members", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetMember fetches a single membership by its Fourthwall member ID.
func (c *Client) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var m Member
	if err := c.get(ctx, "/memberships/members/"+url.PathEscape(memberID), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LookupCustomer finds a storefront customer by email. Returns ErrNotFound
// (wrapped) when the email has no matching customer.
func (c *Client) LookupCustomer(ctx context.Context, email string) (*Customer, error) {
	var page struct {
		Results []Customer `json:"results"`
	}
	if err := c.get(ctx, "/customers?email="+url.QueryEscape(email), &page); err != nil {
		return nil, err
	}
	norm := domain.NormalizeEmail(email)
	for i := range page.Results {
		if domain.NormalizeEmail(page.Results[i].Email) == norm {
			return &page.Results[i], nil
		}
	}
	return nil, fmt.Errorf("no customer for %s: %w", email, domain.ErrNotFound)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fourthwall request failed: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fourthwall returned status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode fourthwall response: %v: %w", err, domain.ErrUpstream)
	}
	return nil
}

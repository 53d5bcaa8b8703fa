// Package clerk acquires session tokens from the Clerk identity
// provider. Sign-in and sign-up themselves live entirely in Clerk; this
// package only mints short-lived session tokens for API calls.
package clerk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is Clerk's backend API endpoint.
	DefaultBaseURL = "https://api.clerk.com"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)

// Provider mints session tokens through Clerk's backend API. It
// implements signup.TokenProvider.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	sessionID  string
}

// Config configures a Provider.
type Config struct {
	// SecretKey is the Clerk secret key ("sk_live_..." / "sk_test_...").
	SecretKey string
	// SessionID is the session to mint tokens for.
	SessionID string
	// BaseURL overrides the Clerk API endpoint, mainly for tests.
	BaseURL string
	// HTTPTimeout overrides the default request timeout.
	HTTPTimeout time.Duration
}

// New creates a Provider.
func New(cfg Config) (*Provider, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("clerk: SecretKey is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		secretKey:  cfg.SecretKey,
		sessionID:  cfg.SessionID,
	}, nil
}

// AcquireToken mints a session token. It returns an empty token when the
// session is unknown or not yet hydrated, so registration flows can
// apply their own wait-and-retry policy instead of failing hard.
func (p *Provider) AcquireToken(ctx context.Context) (string, error) {
	if p.sessionID == "" {
		return "", nil
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/tokens", p.baseURL, p.sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("clerk: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("clerk: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("clerk: failed to read response: %w", err)
	}

	// An unknown session is absence, not failure: Clerk may still be
	// hydrating it.
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("clerk: token request failed (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		JWT string `json:"jwt"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("clerk: failed to parse response: %w", err)
	}
	return result.JWT, nil
}

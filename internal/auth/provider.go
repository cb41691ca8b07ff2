package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SessionUser is the identity resolved from an access token. Email and
// AvatarURL are empty when the provider has nothing for them.
type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Token is the result of a successful code exchange.
type Token struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds; 0 when the
	// provider did not report one.
	ExpiresIn int
}

// AuthorizeParams are the inputs to the provider authorization URL.
type AuthorizeParams struct {
	// RedirectTo is the full callback URL on this site.
	RedirectTo    string
	State         string
	CodeChallenge string
}

// Provider is the identity-provider surface the auth flow depends on.
// Any OAuth2/OIDC-compliant provider can stand behind it, and tests
// substitute fakes.
type Provider interface {
	// AuthorizeURL builds the upstream authorization redirect URL.
	// Pure string construction, no network.
	AuthorizeURL(p AuthorizeParams) string

	// ExchangeCode trades an authorization code plus PKCE verifier for
	// session tokens at the provider token endpoint.
	ExchangeCode(ctx context.Context, code, verifier string) (*Token, error)

	// ResolveUser validates an access token and returns the user it
	// belongs to.
	ResolveUser(ctx context.Context, accessToken string) (*SessionUser, error)

	// RevokeSession invalidates the remote session for an access token.
	RevokeSession(ctx context.Context, accessToken string) error
}

// Client talks to a hosted GoTrue-style identity provider.
type Client struct {
	baseURL       string
	apiKey        string
	oauthProvider string
	httpClient    *http.Client
}

// NewClient creates a provider client. baseURL is the provider origin,
// apiKey its publishable key, oauthProvider the upstream social provider
// identifier (e.g. "google").
func NewClient(baseURL, apiKey, oauthProvider string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
		oauthProvider: oauthProvider,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) AuthorizeURL(p AuthorizeParams) string {
	params := url.Values{
		"provider":              {c.oauthProvider},
		"redirect_to":           {p.RedirectTo},
		"response_type":         {"code"},
		"state":                 {p.State},
		"code_challenge":        {p.CodeChallenge},
		"code_challenge_method": {"S256"},
	}
	return c.baseURL + "/auth/v1/authorize?" + params.Encode()
}

func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*Token, error) {
	payload, err := json.Marshal(map[string]string{
		"auth_code":     code,
		"code_verifier": verifier,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/token?grant_type=pkce", strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var tok struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" || tok.RefreshToken == "" {
		return nil, fmt.Errorf("token response missing tokens")
	}

	return &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
	}, nil
}

func (c *Client) ResolveUser(ctx context.Context, accessToken string) (*SessionUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("create user request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user endpoint returned %d", resp.StatusCode)
	}

	var user struct {
		ID           string         `json:"id"`
		Email        string         `json:"email"`
		UserMetadata map[string]any `json:"user_metadata"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("user response missing id")
	}

	avatarURL := ""
	if raw, ok := user.UserMetadata["avatar_url"].(string); ok {
		avatarURL = raw
	}

	return &SessionUser{
		ID:        user.ID,
		Email:     user.Email,
		AvatarURL: avatarURL,
	}, nil
}

func (c *Client) RevokeSession(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("create logout request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("logout endpoint returned %d", resp.StatusCode)
	}
	return nil
}

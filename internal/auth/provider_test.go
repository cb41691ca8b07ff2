package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AuthorizeURL(t *testing.T) {
	c := NewClient("https://auth.example.com", "pk-test", "google")
	raw := c.AuthorizeURL(AuthorizeParams{
		RedirectTo:    "https://site.example.com/auth/callback?redirectTo=%2Fboard",
		State:         "state-1",
		CodeChallenge: "challenge-1",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "auth.example.com", u.Host)
	assert.Equal(t, "/auth/v1/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "google", q.Get("provider"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "challenge-1", q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, "https://site.example.com/auth/callback?redirectTo=%2Fboard", q.Get("redirect_to"))
}

func TestClient_ExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "pk-test", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer pk-test", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "code-1", body["auth_code"])
		assert.Equal(t, "verifier-1", body["code_verifier"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"expires_in":    1800,
		})
	}))
	defer srv.Close()

	tok, err := NewClient(srv.URL, "pk-test", "google").ExchangeCode(context.Background(), "code-1", "verifier-1")
	require.NoError(t, err)
	assert.Equal(t, "at", tok.AccessToken)
	assert.Equal(t, "rt", tok.RefreshToken)
	assert.Equal(t, 1800, tok.ExpiresIn)
}

func TestClient_ExchangeCode_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "pk", "google").ExchangeCode(context.Background(), "c", "v")
	require.Error(t, err)
	// Provider error internals stay out of the message surfaced upstream.
	assert.NotContains(t, err.Error(), "invalid_grant")
}

func TestClient_ExchangeCode_MissingTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"access_token": "at"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "pk", "google").ExchangeCode(context.Background(), "c", "v")
	require.Error(t, err)
}

func TestClient_ResolveUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "u1",
			"email": "me@example.com",
			"user_metadata": map[string]any{
				"avatar_url": "https://img.example.com/a.png",
			},
		})
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL, "pk", "google").ResolveUser(context.Background(), "access-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "me@example.com", user.Email)
	assert.Equal(t, "https://img.example.com/a.png", user.AvatarURL)
}

func TestClient_ResolveUser_NonStringAvatar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":            "u1",
			"user_metadata": map[string]any{"avatar_url": 42},
		})
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL, "pk", "google").ResolveUser(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, "", user.AvatarURL)
}

func TestClient_ResolveUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "pk", "google").ResolveUser(context.Background(), "t")
	require.Error(t, err)
}

func TestClient_RevokeSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "pk", "google").RevokeSession(context.Background(), "access-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestClient_RevokeSession_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "pk", "google").RevokeSession(context.Background(), "t")
	require.Error(t, err)
}

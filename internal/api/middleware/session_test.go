package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayeon/seoulite/internal/auth"
)

type stubProvider struct {
	user *auth.SessionUser
	err  error
}

func (s *stubProvider) AuthorizeURL(auth.AuthorizeParams) string { return "" }

func (s *stubProvider) ExchangeCode(context.Context, string, string) (*auth.Token, error) {
	return nil, errors.New("not used")
}

func (s *stubProvider) ResolveUser(context.Context, string) (*auth.SessionUser, error) {
	return s.user, s.err
}

func (s *stubProvider) RevokeSession(context.Context, string) error { return nil }

func sessionMiddleware(provider *stubProvider) func(http.Handler) http.Handler {
	return Session(auth.NewSessionReader(provider, auth.NewCookieStore(false)))
}

func TestSession_ResolvesUserIntoContext(t *testing.T) {
	provider := &stubProvider{user: &auth.SessionUser{ID: "u1", Email: "dayeon@example.com"}}

	var got *auth.SessionUser
	h := sessionMiddleware(provider)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUser(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.AddCookie(&http.Cookie{Name: "os-access-token", Value: "at-1"})
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
}

func TestSession_ProviderRejectionLeavesNilUser(t *testing.T) {
	provider := &stubProvider{err: errors.New("token expired")}

	var got *auth.SessionUser
	h := sessionMiddleware(provider)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUser(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.AddCookie(&http.Cookie{Name: "os-access-token", Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Nil(t, got)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	called := false
	h := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "sign in required")
}

func TestRequireUser_PassesSignedIn(t *testing.T) {
	called := false
	h := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	ctx := WithUser(r.Context(), &auth.SessionUser{ID: "u1"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r.WithContext(ctx))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

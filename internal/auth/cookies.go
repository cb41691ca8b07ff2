package auth

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Cookie names. The "os-" prefix scopes them to this site.
const (
	AccessTokenCookie  = "os-access-token"
	RefreshTokenCookie = "os-refresh-token"
	StateCookie        = "os-oauth-state"
	VerifierCookie     = "os-pkce-verifier"
)

const (
	// defaultAccessMaxAge is used when the provider does not report expiry.
	defaultAccessMaxAge = 3600
	refreshMaxAge       = 60 * 60 * 24 * 30
	// bindingMaxAge bounds the OAuth redirect round trip. Long enough for a
	// user to pick an account on the provider page, short enough to limit
	// the replay window.
	bindingMaxAge = 60 * 10
)

// Binding holds the transient values tying a callback to the browser that
// initiated the flow: the opaque state and the PKCE code verifier.
type Binding struct {
	State    string
	Verifier string
}

// CookieStore owns the names, scopes and lifetimes of all auth cookies.
// All cookies are HTTP-only, SameSite=Lax, path "/"; Secure is set exactly
// when the site origin is HTTPS.
type CookieStore struct {
	secure bool
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure}
}

// SetSession sets the access and refresh token cookies together. The access
// cookie lives for the provider-reported expiry (falling back to one hour),
// the refresh cookie for a fixed 30 days.
func (s *CookieStore) SetSession(w http.ResponseWriter, accessToken, refreshToken string, expiresIn int) {
	accessMaxAge := defaultAccessMaxAge
	if expiresIn > 0 {
		accessMaxAge = expiresIn
	}
	s.set(w, AccessTokenCookie, accessToken, accessMaxAge)
	s.set(w, RefreshTokenCookie, refreshToken, refreshMaxAge)
}

// ClearSession expires both session cookies. Clearing always re-sets the
// cookie to an empty value with immediate expiry, never by omission.
func (s *CookieStore) ClearSession(w http.ResponseWriter) {
	s.clear(w, AccessTokenCookie)
	s.clear(w, RefreshTokenCookie)
}

// SetBinding stores the state and verifier cookies for one login attempt.
// Concurrent attempts from the same browser each overwrite the previous
// binding; only the most recent attempt can complete.
func (s *CookieStore) SetBinding(w http.ResponseWriter, b Binding) {
	s.set(w, StateCookie, b.State, bindingMaxAge)
	s.set(w, VerifierCookie, b.Verifier, bindingMaxAge)
}

// ClearBinding expires both binding cookies. Called on every callback exit,
// success or failure: a binding must never survive past one attempt.
func (s *CookieStore) ClearBinding(w http.ResponseWriter) {
	s.clear(w, StateCookie)
	s.clear(w, VerifierCookie)
}

// ReadBinding extracts the binding values from inbound request cookies.
func (s *CookieStore) ReadBinding(r *http.Request) Binding {
	cookies := ParseCookies(r.Header.Get("Cookie"))
	return Binding{
		State:    cookies[StateCookie],
		Verifier: cookies[VerifierCookie],
	}
}

// ReadAccessToken returns the access token cookie value, or "".
func (s *CookieStore) ReadAccessToken(r *http.Request) string {
	return ParseCookies(r.Header.Get("Cookie"))[AccessTokenCookie]
}

func (s *CookieStore) set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serializes as Max-Age=0
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}

// ParseCookies parses a raw Cookie header value into a name -> value map.
// Values are percent-decoded; malformed pairs are skipped. Independent of
// any request framework so it can back both middleware and handlers.
func ParseCookies(header string) map[string]string {
	out := map[string]string{}
	if header == "" {
		return out
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		out[name] = value
	}
	return out
}

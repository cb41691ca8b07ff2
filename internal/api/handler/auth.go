package handler

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/auth"
)

// Auth owns the OAuth login flow: authorization redirect, provider
// callback and sign-out.
type Auth struct {
	provider auth.Provider
	cookies  *auth.CookieStore
	siteURL  string
}

func NewAuth(provider auth.Provider, cookies *auth.CookieStore, siteURL string) *Auth {
	return &Auth{provider: provider, cookies: cookies, siteURL: siteURL}
}

// Start initiates the login flow: sanitizes the post-login destination,
// generates a fresh state and PKCE pair, binds them to the browser via
// transient cookies and redirects to the provider.
func (h *Auth) Start(w http.ResponseWriter, r *http.Request) {
	target := auth.ResolveRedirectTarget(r.URL.Query().Get("redirectTo"), "/")

	callbackURL := h.siteURL + "/auth/callback?redirectTo=" + url.QueryEscape(target)

	state := auth.NewState()
	verifier := auth.NewVerifier()

	authorizeURL := h.provider.AuthorizeURL(auth.AuthorizeParams{
		RedirectTo:    callbackURL,
		State:         state,
		CodeChallenge: auth.ChallengeS256(verifier),
	})

	h.cookies.SetBinding(w, auth.Binding{State: state, Verifier: verifier})
	http.Redirect(w, r, authorizeURL, http.StatusFound)
}

// Callback completes the login flow. Every exit clears the binding
// cookies; every failure lands on the login page with the sanitized
// destination preserved and no error detail in the URL.
func (h *Auth) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target := auth.ResolveRedirectTarget(q.Get("redirectTo"), "/")
	code := q.Get("code")
	binding := h.cookies.ReadBinding(r)

	fail := func() {
		h.cookies.ClearBinding(w)
		http.Redirect(w, r, auth.BuildLoginPath(target), http.StatusFound)
	}

	if code == "" || binding.Verifier == "" {
		fail()
		return
	}
	if !auth.VerifyState(binding.State, q.Get("state")) {
		fail()
		return
	}

	token, err := h.provider.ExchangeCode(r.Context(), code, binding.Verifier)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("code exchange failed")
		fail()
		return
	}

	h.cookies.SetSession(w, token.AccessToken, token.RefreshToken, token.ExpiresIn)
	h.cookies.ClearBinding(w)
	http.Redirect(w, r, target, http.StatusFound)
}

// SignOut handles link-driven sign-out: revoke upstream, clear cookies,
// back to the root.
func (h *Auth) SignOut(w http.ResponseWriter, r *http.Request) {
	h.signOut(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignOutJSON handles menu-driven sign-out for programmatic callers.
func (h *Auth) SignOutJSON(w http.ResponseWriter, r *http.Request) {
	h.signOut(w, r)
	response.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Auth) signOut(w http.ResponseWriter, r *http.Request) {
	// Remote revocation is best-effort: the local session is cleared no
	// matter what the provider says.
	if accessToken := h.cookies.ReadAccessToken(r); accessToken != "" {
		if err := h.provider.RevokeSession(r.Context(), accessToken); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("session revocation failed")
		}
	}
	h.cookies.ClearSession(w)
}

package auth

import (
	"context"
	"net/http"
	"strings"
)

// SessionReader resolves the current user from inbound request cookies.
// It is the single source of truth for "who is logged in": no server-side
// caching, every hit with an access token is a fresh provider round trip.
type SessionReader struct {
	provider Provider
	cookies  *CookieStore
}

func NewSessionReader(provider Provider, cookies *CookieStore) *SessionReader {
	return &SessionReader{provider: provider, cookies: cookies}
}

// CurrentUser returns the verified user for the request, or nil. A missing
// cookie returns nil without a network call; a provider error or rejection
// also returns nil — callers treat "no session" and "invalid session"
// identically.
func (s *SessionReader) CurrentUser(ctx context.Context, r *http.Request) *SessionUser {
	accessToken := s.cookies.ReadAccessToken(r)
	if accessToken == "" {
		return nil
	}

	user, err := s.provider.ResolveUser(ctx, accessToken)
	if err != nil {
		return nil
	}
	return user
}

// UserView is the display shape of a signed-in user.
type UserView struct {
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	Initial   string  `json:"initial"`
}

// View derives the header/menu presentation of a user: the email (with a
// generic placeholder when the provider returned none), the avatar URL
// passed through untouched, and an uppercase fallback initial.
func (u *SessionUser) View() UserView {
	email := u.Email
	if email == "" {
		email = "Signed-in user"
	}

	var avatar *string
	if u.AvatarURL != "" {
		avatarURL := u.AvatarURL
		avatar = &avatarURL
	}

	initial := "U"
	if runes := []rune(email); len(runes) > 0 {
		initial = strings.ToUpper(string(runes[0]))
	}

	return UserView{
		Email:     email,
		AvatarURL: avatar,
		Initial:   initial,
	}
}

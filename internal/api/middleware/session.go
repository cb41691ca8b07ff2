package middleware

import (
	"context"
	"net/http"

	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/auth"
)

type contextKey string

const userKey contextKey = "session-user"

// Session resolves the current user from cookies on every request and
// stores it (possibly nil) in the context. Handlers that can serve both
// signed-in and anonymous visitors read it with GetUser.
func Session(reader *auth.SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithUser(r.Context(), reader.CurrentUser(r.Context(), r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser returns a context carrying the given session user.
func WithUser(ctx context.Context, user *auth.SessionUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser extracts the session user from the request context, or nil.
func GetUser(ctx context.Context) *auth.SessionUser {
	user, _ := ctx.Value(userKey).(*auth.SessionUser)
	return user
}

// RequireUser rejects requests without a verified session.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUser(r.Context()) == nil {
			response.WriteError(w, http.StatusUnauthorized, "sign in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

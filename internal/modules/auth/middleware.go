package auth

import (
	"context"
	"net/http"

	"servicehp-backend/internal/apperr"
	"servicehp-backend/internal/web"
)

type contextKey struct{}

var sessionUserKey contextKey

// RequireAuth rejects requests that do not carry a valid session cookie and
// stores the session user in the request context.
func RequireAuth(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil {
				web.Fail(w, apperr.Unauthorized("login required"))
				return
			}
			u, err := svc.CurrentSession(r.Context(), c.Value)
			if err != nil {
				web.Fail(w, err)
				return
			}
			if u == nil {
				web.Fail(w, apperr.Unauthorized("session expired"))
				return
			}
			ctx := context.WithValue(r.Context(), sessionUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the session user placed by RequireAuth, or nil.
func UserFromContext(ctx context.Context) *SessionUser {
	u, _ := ctx.Value(sessionUserKey).(*SessionUser)
	return u
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/botica-real/botica/internal/platform/httpx"
)

type contextKey struct{}

// ContextWithUser stores the authenticated user on the context.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(contextKey{}).(*User)
	return user
}

// RequireToken guards a route subtree behind a bearer access token. The
// scheme comparison is case-insensitive because the dashboard sends
// "bearer" in lowercase.
func (s *Service) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || raw == "" {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		user, err := s.VerifyToken(r.Context(), raw)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

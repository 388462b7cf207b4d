package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/models"
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID string
	Role   string
}

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromContext returns the authenticated identity attached by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity attaches an identity to a context. Exported for handler tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Middleware gates protected routes. A missing bearer token and an invalid
// (malformed, mis-signed or expired) one both reject with 401; the response
// bodies stay generic.
func Middleware(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}

			if tokenStr == "" {
				httputil.RespondError(w, "missing auth token", http.StatusUnauthorized)
				return
			}

			claims, err := tm.Verify(tokenStr)
			if err != nil {
				httputil.RespondError(w, "invalid auth token", http.StatusUnauthorized)
				return
			}

			identity := Identity{UserID: claims.Subject, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin rejects authenticated callers whose role is not Admin.
// It must run after Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != models.RoleAdmin {
			httputil.RespondError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

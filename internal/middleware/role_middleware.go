package middleware

import (
	"context"
	"net/http"

	"github.com/jahangir2k04/fitflex-client/internal/models"
)

// RoleLookup resolves the stored role for an email. Satisfied by
// repository.UserStore.
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// RequireRole gates a route on the caller's stored role. The role is read
// from the users collection on every request rather than trusted from the
// token, so an admin's role change takes effect on the user's next call.
// Must run after RequireAuth.
func RequireRole(users RoleLookup, role models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			user, err := users.FindByEmail(r.Context(), claims.Email)
			if err != nil || user.Role != role {
				writeAuthError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

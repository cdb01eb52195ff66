package middleware

import (
	"net/http"

	"github.com/legislate-ai/core-service/internal/domain"
)

// RequireRole rejects unless the authenticated user's role is in the
// allowed set. Assumes Authenticate has already run.
func RequireRole(writeErr WriteErrFunc, roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Authenticate not applied).
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if _, ok := allowed[u.Role]; !ok {
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireVerified rejects unless the live user record is verified.
// The token's status claim is never consulted: an admin may revoke
// verification after issuance.
func RequireVerified(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if u.Status != domain.StatusVerified {
				writeErr(w, r, domain.ErrNotVerified())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

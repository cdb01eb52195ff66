package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/domain"
)

type TokenVerifier interface {
	VerifySessionToken(token string) (auth.TokenClaims, error)
}

// UserReader loads the live user record for an authenticated id. The
// token's role/status snapshot is never trusted for gating: status can
// change between issuance and use.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Authenticate verifies Authorization: Bearer <token>, re-fetches the
// user row and injects it into the request context. A missing token and
// an invalid one fail distinctly.
func Authenticate(verifier TokenVerifier, users UserReader, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.VerifySessionToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if claims.UserID == 0 {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				// A token for a vanished user is an auth failure, not a 404.
				if domain.Is(err, "user_not_found") {
					writeErr(w, r, domain.ErrTokenInvalid())
					return
				}
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

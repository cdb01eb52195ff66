package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/legislate-ai/core-service/internal/domain"
)

// RateLimitByIP caps credential-endpoint traffic per client IP. The
// limit handler emits the standard error body instead of httprate's
// plain-text default.
func RateLimitByIP(limit int, window time.Duration, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeErr(w, r, domain.ErrRateLimited())
		}),
	)
}

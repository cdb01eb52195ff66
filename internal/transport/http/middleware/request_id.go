package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appCtx "github.com/legislate-ai/core-service/internal/pkg/context"
)

const requestIDHeader = "X-Request-Id"

// RequestID honors an inbound X-Request-Id, minting a uuid when the
// caller sent none, and echoes it back so clients can correlate logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(appCtx.WithRequestID(r.Context(), id)))
	})
}

package middleware

import (
	"context"

	"github.com/legislate-ai/core-service/internal/domain"
)

type ctxKey string

const ctxUser ctxKey = "auth_user"

// WithUser attaches the freshly loaded user record to the context.
// Gates downstream read this record, not the token snapshot.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxUser, u)
}

func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxUser).(domain.User)
	return u, ok && u.ID != 0
}

package auth

import (
	"context"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth flows need, not HOW rows are stored.
*/
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	// GetByRoleIdentifier looks a user up by the role-specific login key:
	// adminname, registrationNumber, contactNumber or name.
	GetByRoleIdentifier(ctx context.Context, role domain.Role, identifier string) (domain.User, error)

	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.User, error)
	UpdateTotpSecret(ctx context.Context, id int64, secret string) (domain.User, error)

	ListByRoleStatus(ctx context.Context, role domain.Role, status domain.Status) ([]domain.User, error)
	Counts(ctx context.Context) (domain.UserCounts, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID int64
	Role   domain.Role
	Status domain.Status
	Exp    time.Time
}

type TokenSigner interface {
	SignSessionToken(u domain.User, ttl time.Duration) (string, error)
	VerifySessionToken(token string) (TokenClaims, error)
}

/*
TotpProvider
------------
Shared-secret second factor. GenerateSecret returns the enrollment
artifacts handed to the client exactly once, at registration.
*/
type TotpEnrollment struct {
	Base32     string
	OtpauthURL string
	QRCode     string // PNG data URL
}

type TotpProvider interface {
	GenerateSecret(label string) (TotpEnrollment, error)
	Verify(code, secret string) bool
}

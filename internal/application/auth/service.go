package auth

import (
	"context"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	totp   TotpProvider

	tokenTTL      time.Duration
	seedAdminName string
	audit         func(action string, fields map[string]string)
}

type Config struct {
	TokenTTL time.Duration

	// SeedAdminName is the adminname of the bootstrap admin account;
	// the setup-totp flow targets exactly this account.
	SeedAdminName string
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, totp TotpProvider, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	seedName := cfg.SeedAdminName
	if seedName == "" {
		seedName = "admin"
	}
	return &Service{
		users:         users,
		hasher:        hasher,
		signer:        signer,
		totp:          totp,
		tokenTTL:      ttl,
		seedAdminName: seedName,
		audit:         func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// LoginResult is the common login output. Pending is the non-error
// "wait for verification" signal for providers: no token, no failure.
type LoginResult struct {
	User    domain.User
	Token   string
	Pending bool
}

// RegisterResult is returned by provider/admin registrations that hand
// out a TOTP enrollment instead of a session token.
type RegisterResult struct {
	User domain.User
	Totp TotpEnrollment
}

func (s *Service) issueToken(u domain.User) (string, error) {
	return s.signer.SignSessionToken(u, s.tokenTTL)
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

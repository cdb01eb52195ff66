package auth

import (
	"context"
	"strings"

	"github.com/legislate-ai/core-service/internal/domain"
)

// ProviderLogin authenticates an NGO or lawyer by its role identifier
// plus a TOTP code. The status checks run in a fixed order:
// rejected accounts get an explicit rejection (never "not found"),
// unverified accounts get a non-error pending result without the TOTP
// code even being checked, and only verified accounts reach the OTP
// gate and a session token.
func (s *Service) ProviderLogin(ctx context.Context, role domain.Role, identifier, otp string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if !role.IsProvider() {
		return LoginResult{}, domain.ErrInvalidField("role", "must be ngo or lawyer")
	}
	if identifier == "" || otp == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByRoleIdentifier(ctx, role, identifier)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return LoginResult{}, domain.ErrAccountNotFound(role)
		}
		return LoginResult{}, err
	}

	switch u.Status {
	case domain.StatusRejected:
		return LoginResult{}, domain.ErrProfileRejected()
	case domain.StatusPending:
		return LoginResult{User: u, Pending: true}, nil
	}

	if !s.totp.Verify(otp, u.TotpSecret) {
		return LoginResult{}, domain.ErrInvalidOTP()
	}

	token, err := s.issueToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("provider_logged_in", map[string]string{"role": string(role)})
	return LoginResult{User: u, Token: token}, nil
}

// IndividualLogin authenticates by name + password.
func (s *Service) IndividualLogin(ctx context.Context, name, password string) (LoginResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByRoleIdentifier(ctx, domain.RoleIndividual, name)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return LoginResult{}, domain.ErrAccountNotFound(domain.RoleIndividual)
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	token, err := s.issueToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("individual_logged_in", map[string]string{"name": name})
	return LoginResult{User: u, Token: token}, nil
}

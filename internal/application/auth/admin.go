package auth

import (
	"context"
	"strings"

	"github.com/legislate-ai/core-service/internal/domain"
)

// AdminSetupTotp configures a TOTP secret for the bootstrap admin. It
// requires a fresh password proof and refuses once a secret exists, so
// the second factor can never be silently replaced over HTTP.
func (s *Service) AdminSetupTotp(ctx context.Context, uid, password string) (TotpEnrollment, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return TotpEnrollment{}, domain.ErrMissingField("uid")
	}
	if password == "" {
		return TotpEnrollment{}, domain.ErrMissingField("password")
	}

	admin, err := s.users.GetByRoleIdentifier(ctx, domain.RoleAdmin, s.seedAdminName)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return TotpEnrollment{}, domain.ErrAccountNotFound(domain.RoleAdmin)
		}
		return TotpEnrollment{}, err
	}
	if admin.UID != uid {
		return TotpEnrollment{}, domain.ErrAccountNotFound(domain.RoleAdmin)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return TotpEnrollment{}, domain.ErrInvalidCredentials()
	}

	if admin.TotpSecret != "" {
		return TotpEnrollment{}, domain.ErrTotpAlreadyConfigured()
	}

	totp, err := s.totp.GenerateSecret("Legislate AI Admin")
	if err != nil {
		return TotpEnrollment{}, err
	}

	if _, err := s.users.UpdateTotpSecret(ctx, admin.ID, totp.Base32); err != nil {
		return TotpEnrollment{}, err
	}

	s.audit("admin_totp_configured", map[string]string{"admin": s.seedAdminName})
	return totp, nil
}

// AdminLogin authenticates by adminname + password. The OTP check only
// applies once a secret has been configured: before that the password
// alone suffices, which is what makes first-boot setup reachable at
// all. Once configured the second factor is mandatory.
func (s *Service) AdminLogin(ctx context.Context, adminname, password, otp string) (LoginResult, error) {
	adminname = strings.TrimSpace(adminname)
	if adminname == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	admin, err := s.users.GetByRoleIdentifier(ctx, domain.RoleAdmin, adminname)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return LoginResult{}, domain.ErrAccountNotFound(domain.RoleAdmin)
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if admin.TotpSecret != "" {
		if otp == "" {
			return LoginResult{}, domain.ErrOTPRequired()
		}
		if !s.totp.Verify(otp, admin.TotpSecret) {
			return LoginResult{}, domain.ErrInvalidOTP()
		}
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("admin_logged_in", map[string]string{"adminname": adminname})
	return LoginResult{User: admin, Token: token}, nil
}

// AdminCreate provisions a further admin account. There is no
// self-registration route for admins: only an authenticated admin
// reaches this. The new account gets both a password and a TOTP secret,
// returned exactly once for enrollment.
func (s *Service) AdminCreate(ctx context.Context, adminname, uid, email, password string) (RegisterResult, error) {
	adminname = strings.TrimSpace(adminname)
	uid = strings.TrimSpace(uid)
	if adminname == "" {
		return RegisterResult{}, domain.ErrMissingField("adminname")
	}
	if uid == "" {
		return RegisterResult{}, domain.ErrMissingField("uid")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return RegisterResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return RegisterResult{}, err
	}

	totp, err := s.totp.GenerateSecret("Legislate AI Admin (" + adminname + ")")
	if err != nil {
		return RegisterResult{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		Role:         domain.RoleAdmin,
		Status:       domain.StatusVerified,
		Name:         adminname,
		AdminName:    adminname,
		UID:          uid,
		Email:        email,
		PasswordHash: hash,
		TotpSecret:   totp.Base32,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("admin_created", map[string]string{"adminname": adminname})
	return RegisterResult{User: created, Totp: totp}, nil
}

package auth

import (
	"context"
	"strings"

	"github.com/legislate-ai/core-service/internal/domain"
)

// RegisterNgo creates a pending NGO account and returns the TOTP
// enrollment. Providers never get a password; the shared secret is
// their only credential, but it cannot produce a session token until
// an admin verifies the account.
func (s *Service) RegisterNgo(ctx context.Context, registrationNumber, name, email string) (RegisterResult, error) {
	registrationNumber = strings.TrimSpace(registrationNumber)
	name = strings.TrimSpace(name)
	if registrationNumber == "" {
		return RegisterResult{}, domain.ErrMissingField("registrationNumber")
	}
	if name == "" {
		return RegisterResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}

	totp, err := s.totp.GenerateSecret("NGO " + name)
	if err != nil {
		return RegisterResult{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		Role:               domain.RoleNgo,
		Status:             domain.StatusPending,
		Name:               name,
		Email:              email,
		TotpSecret:         totp.Base32,
		RegistrationNumber: registrationNumber,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("ngo_registered", map[string]string{"registration_number": registrationNumber})
	return RegisterResult{User: created, Totp: totp}, nil
}

// RegisterLawyer mirrors RegisterNgo with the lawyer identifier pair.
func (s *Service) RegisterLawyer(ctx context.Context, name, enrollmentNumber, email, contactNumber string) (RegisterResult, error) {
	name = strings.TrimSpace(name)
	enrollmentNumber = strings.TrimSpace(enrollmentNumber)
	contactNumber = strings.TrimSpace(contactNumber)
	if name == "" {
		return RegisterResult{}, domain.ErrMissingField("name")
	}
	if enrollmentNumber == "" {
		return RegisterResult{}, domain.ErrMissingField("enrollmentNumber")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if contactNumber == "" {
		return RegisterResult{}, domain.ErrMissingField("contactNumber")
	}

	totp, err := s.totp.GenerateSecret("Lawyer " + name)
	if err != nil {
		return RegisterResult{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		Role:             domain.RoleLawyer,
		Status:           domain.StatusPending,
		Name:             name,
		Email:            email,
		ContactNumber:    contactNumber,
		TotpSecret:       totp.Base32,
		EnrollmentNumber: enrollmentNumber,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("lawyer_registered", map[string]string{"enrollment_number": enrollmentNumber})
	return RegisterResult{User: created, Totp: totp}, nil
}

// RegisterIndividual creates a verified individual account and issues a
// session token immediately; individuals do not go through admin review.
func (s *Service) RegisterIndividual(ctx context.Context, name, contactNumber, password string) (LoginResult, error) {
	name = strings.TrimSpace(name)
	contactNumber = strings.TrimSpace(contactNumber)
	if name == "" {
		return LoginResult{}, domain.ErrMissingField("name")
	}
	if contactNumber == "" {
		return LoginResult{}, domain.ErrMissingField("contactNumber")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return LoginResult{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		Role:          domain.RoleIndividual,
		Status:        domain.StatusVerified,
		Name:          name,
		ContactNumber: contactNumber,
		PasswordHash:  hash,
	})
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.issueToken(created)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("individual_registered", map[string]string{"name": name})
	return LoginResult{User: created, Token: token}, nil
}

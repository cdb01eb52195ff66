package domain

import "time"

type Role string

const (
	// Admin verifies provider registrations and manages other admins.
	RoleAdmin Role = "admin"
	// Ngo and Lawyer are providers: they register pending and need admin approval.
	RoleNgo    Role = "ngo"
	RoleLawyer Role = "lawyer"
	// Individual accounts are verified at creation and may request connections.
	RoleIndividual Role = "individual"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleNgo, RoleLawyer, RoleIndividual:
		return true
	}
	return false
}

// IsProvider reports whether the role participates as a connection target.
func (r Role) IsProvider() bool {
	return r == RoleNgo || r == RoleLawyer
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID     int64
	Role   Role
	Status Status

	Name      string
	AdminName string
	UID       string

	Email         string
	ContactNumber string

	// Credential material. PasswordHash for admin/individual,
	// TotpSecret for providers (and admins once configured).
	PasswordHash string
	TotpSecret   string

	RegistrationNumber string
	EnrollmentNumber   string

	CreatedAt time.Time
}

// LoginIdentifier returns the value used to look this user up at login.
// Uniqueness of this value is enforced per role by the store.
func (u User) LoginIdentifier() string {
	switch u.Role {
	case RoleAdmin:
		return u.AdminName
	case RoleNgo:
		return u.RegistrationNumber
	case RoleLawyer:
		return u.ContactNumber
	case RoleIndividual:
		return u.Name
	}
	return ""
}

// UserCounts is the admin dashboard aggregate. Individuals are counted
// unconditionally since they are verified at creation.
type UserCounts struct {
	TotalUsers      int
	VerifiedNgos    int
	VerifiedLawyers int
	Individuals     int
}

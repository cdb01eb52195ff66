package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

func IsValidRequestStatus(s string) bool {
	switch RequestStatus(s) {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected
}

// ConnectionRequest is a pending/accepted/rejected link between an
// individual (requester) and a provider (target). Only the target may
// transition the status; neither party may delete the row.
type ConnectionRequest struct {
	ID            int64
	RequesterID   int64
	RequesterRole Role
	TargetID      int64
	TargetRole    Role
	Status        RequestStatus
	CreatedAt     time.Time
}

// Profile is the public slice of a user attached to request listings.
// Credential material never appears here.
type Profile struct {
	ID                 int64
	Role               Role
	Name               string
	UID                string
	Email              string
	ContactNumber      string
	RegistrationNumber string
	EnrollmentNumber   string
}

// PublicProfile projects the safe fields of a user.
func (u User) PublicProfile() Profile {
	return Profile{
		ID:                 u.ID,
		Role:               u.Role,
		Name:               u.Name,
		UID:                u.UID,
		Email:              u.Email,
		ContactNumber:      u.ContactNumber,
		RegistrationNumber: u.RegistrationNumber,
		EnrollmentNumber:   u.EnrollmentNumber,
	}
}

// RequestWithParty is a request joined with the counterpart's public
// profile: the requester when viewed by the target, the target when
// viewed by the requester, the "other side" in a connections view.
type RequestWithParty struct {
	ConnectionRequest
	Party Profile
}

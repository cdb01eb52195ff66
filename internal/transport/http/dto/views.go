package dto

import (
	"time"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/domain"
)

// UserView is the sanitized user payload. Password hashes and TOTP
// secrets never cross this boundary.
type UserView struct {
	ID                 int64  `json:"id"`
	Role               string `json:"role"`
	Status             string `json:"status"`
	Name               string `json:"name,omitempty"`
	AdminName          string `json:"adminname,omitempty"`
	UID                string `json:"uid,omitempty"`
	Email              string `json:"email,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	EnrollmentNumber   string `json:"enrollmentNumber,omitempty"`
	ContactNumber      string `json:"contactNumber,omitempty"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:                 u.ID,
		Role:               string(u.Role),
		Status:             string(u.Status),
		Name:               u.Name,
		AdminName:          u.AdminName,
		UID:                u.UID,
		Email:              u.Email,
		RegistrationNumber: u.RegistrationNumber,
		EnrollmentNumber:   u.EnrollmentNumber,
		ContactNumber:      u.ContactNumber,
	}
}

func NewUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

// ProfileView is the public-profile slice attached to request listings.
type ProfileView struct {
	ID                 int64  `json:"id"`
	Role               string `json:"role"`
	Name               string `json:"name,omitempty"`
	UID                string `json:"uid,omitempty"`
	Email              string `json:"email,omitempty"`
	ContactNumber      string `json:"contactNumber,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	EnrollmentNumber   string `json:"enrollmentNumber,omitempty"`
}

func NewProfileView(p domain.Profile) ProfileView {
	return ProfileView{
		ID:                 p.ID,
		Role:               string(p.Role),
		Name:               p.Name,
		UID:                p.UID,
		Email:              p.Email,
		ContactNumber:      p.ContactNumber,
		RegistrationNumber: p.RegistrationNumber,
		EnrollmentNumber:   p.EnrollmentNumber,
	}
}

// TotpView carries the one-time enrollment artifacts.
type TotpView struct {
	Base32     string `json:"base32"`
	OtpauthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"`
}

func NewTotpView(t auth.TotpEnrollment) TotpView {
	return TotpView{Base32: t.Base32, OtpauthURL: t.OtpauthURL, QRCode: t.QRCode}
}

// RequestView is a connection request, optionally joined with the
// counterpart's profile under the key matching the viewer's side.
type RequestView struct {
	ID            int64     `json:"id"`
	RequesterID   int64     `json:"requesterId"`
	RequesterRole string    `json:"requesterRole"`
	TargetID      int64     `json:"targetId"`
	TargetRole    string    `json:"targetRole"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`

	Requester *ProfileView `json:"requester,omitempty"`
	Target    *ProfileView `json:"target,omitempty"`
	Party     *ProfileView `json:"party,omitempty"`
}

func NewRequestView(cr domain.ConnectionRequest) RequestView {
	return RequestView{
		ID:            cr.ID,
		RequesterID:   cr.RequesterID,
		RequesterRole: string(cr.RequesterRole),
		TargetID:      cr.TargetID,
		TargetRole:    string(cr.TargetRole),
		Status:        string(cr.Status),
		CreatedAt:     cr.CreatedAt,
	}
}

// PartySide selects which key the joined profile is exposed under.
type PartySide int

const (
	SideRequester PartySide = iota
	SideTarget
	SideParty
)

func NewRequestViews(rows []domain.RequestWithParty, side PartySide) []RequestView {
	out := make([]RequestView, 0, len(rows))
	for _, row := range rows {
		v := NewRequestView(row.ConnectionRequest)
		p := NewProfileView(row.Party)
		switch side {
		case SideRequester:
			v.Requester = &p
		case SideTarget:
			v.Target = &p
		case SideParty:
			v.Party = &p
		}
		out = append(out, v)
	}
	return out
}

// -------- Response envelopes --------

type AuthData struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type PendingData struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RegisterData struct {
	User UserView `json:"user"`
	Totp TotpView `json:"totp"`
}

type TotpData struct {
	Totp TotpView `json:"totp"`
}

type MeData struct {
	User UserView `json:"user"`
}

type StatsData struct {
	TotalUsers      int `json:"totalUsers"`
	VerifiedNgos    int `json:"verifiedNgos"`
	VerifiedLawyers int `json:"verifiedLawyers"`
	Individuals     int `json:"individuals"`
}

type PendingApprovalsData struct {
	Ngos    []UserView `json:"ngos"`
	Lawyers []UserView `json:"lawyers"`
}

type UsersData struct {
	Users []UserView `json:"users"`
}

type RequestData struct {
	Request RequestView `json:"request"`
}

type RequestsData struct {
	Requests []RequestView `json:"requests"`
}

type ConnectionsData struct {
	Connections []RequestView `json:"connections"`
}

package dto

import (
	"strings"
	"testing"

	"github.com/legislate-ai/core-service/internal/domain"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	req := NgoRegisterRequest{Name: "Helping Hands", Email: "hh@example.org"}
	err := req.Validate()
	if !domain.Is(err, "missing_field") {
		t.Fatalf("expected missing_field, got %v", err)
	}
	if !strings.Contains(err.Error(), "registrationNumber") {
		t.Fatalf("expected json tag name in message, got %q", err.Error())
	}
}

func TestValidateOneofViolation(t *testing.T) {
	t.Parallel()

	req := CreateRequestRequest{TargetID: 7, TargetRole: "individual"}
	err := req.Validate()
	if !domain.Is(err, "invalid_field") {
		t.Fatalf("expected invalid_field, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "targetRole") || !strings.Contains(msg, "must be one of: ngo lawyer") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestValidateReportsFirstViolation(t *testing.T) {
	t.Parallel()

	err := (&LawyerRegisterRequest{}).Validate()
	if !domain.Is(err, "missing_field") {
		t.Fatalf("expected missing_field, got %v", err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("expected first declared field in message, got %q", err.Error())
	}
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	req := AdminCreateRequest{AdminName: "ops", UID: "1001", Email: "not-an-email", Password: "pw"}
	err := req.Validate()
	if !domain.Is(err, "invalid_field") {
		t.Fatalf("expected invalid_field, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected email field in message, got %q", err.Error())
	}
}

func TestValidateAcceptsCompleteRequests(t *testing.T) {
	t.Parallel()

	cases := []interface{ Validate() error }{
		&AdminSetupTotpRequest{UID: "23016053", Password: "23016053"},
		&AdminLoginRequest{AdminName: "admin", Password: "pw"},
		&NgoRegisterRequest{RegistrationNumber: "REG-001", Name: "Helping Hands", Email: "hh@example.org"},
		&NgoLoginRequest{RegistrationNumber: "REG-001", OTP: "123456"},
		&LawyerRegisterRequest{Name: "Priya", EnrollmentNumber: "ENR-7", Email: "p@example.org", ContactNumber: "555-0101"},
		&LawyerLoginRequest{ContactNumber: "555-0101", OTP: "123456"},
		&IndividualRegisterRequest{Name: "asha", ContactNumber: "555-0102", Password: "pw"},
		&IndividualLoginRequest{Name: "asha", Password: "pw"},
		&VerifyRequest{UserID: 3, Action: "verified"},
		&CreateRequestRequest{TargetID: 2, TargetRole: "ngo"},
		&ResolveRequestRequest{Status: "accepted"},
	}
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			t.Fatalf("%T: unexpected error %v", c, err)
		}
	}
}

func TestRequestViewPartySides(t *testing.T) {
	t.Parallel()

	rows := []domain.RequestWithParty{{
		ConnectionRequest: domain.ConnectionRequest{ID: 1, RequesterID: 2, RequesterRole: domain.RoleIndividual, TargetID: 3, TargetRole: domain.RoleNgo, Status: domain.RequestPending},
		Party:             domain.Profile{ID: 3, Role: domain.RoleNgo, Name: "Helping Hands"},
	}}

	byRequester := NewRequestViews(rows, SideRequester)
	if byRequester[0].Requester == nil || byRequester[0].Target != nil || byRequester[0].Party != nil {
		t.Fatalf("expected profile only under requester, got %+v", byRequester[0])
	}
	byTarget := NewRequestViews(rows, SideTarget)
	if byTarget[0].Target == nil || byTarget[0].Target.Name != "Helping Hands" {
		t.Fatalf("expected target profile, got %+v", byTarget[0])
	}
	byParty := NewRequestViews(rows, SideParty)
	if byParty[0].Party == nil || byParty[0].Party.ID != 3 {
		t.Fatalf("expected party profile, got %+v", byParty[0])
	}
}

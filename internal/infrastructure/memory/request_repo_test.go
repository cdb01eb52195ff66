package memory

import (
	"context"
	"testing"

	"github.com/legislate-ai/core-service/internal/domain"
)

func seedParties(t *testing.T) (*UserRepo, *RequestRepo, domain.User, domain.User) {
	t.Helper()
	users := NewUserRepo()
	requests := NewRequestRepo(users)
	ctx := context.Background()

	individual, err := users.Create(ctx, domain.User{Role: domain.RoleIndividual, Status: domain.StatusVerified, Name: "Asha"})
	if err != nil {
		t.Fatalf("seed individual: %v", err)
	}
	ngo, err := users.Create(ctx, domain.User{Role: domain.RoleNgo, Status: domain.StatusVerified, Name: "Org", RegistrationNumber: "REG-1"})
	if err != nil {
		t.Fatalf("seed ngo: %v", err)
	}
	return users, requests, individual, ngo
}

func pendingRequest(t *testing.T, requests *RequestRepo, requester, target domain.User) domain.ConnectionRequest {
	t.Helper()
	cr, err := requests.Create(context.Background(), domain.ConnectionRequest{
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		TargetID:      target.ID,
		TargetRole:    target.Role,
		Status:        domain.RequestPending,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return cr
}

func TestRequestRepoResolvePendingOnce(t *testing.T) {
	t.Parallel()

	_, requests, individual, ngo := seedParties(t)
	ctx := context.Background()
	cr := pendingRequest(t, requests, individual, ngo)

	resolved, err := requests.ResolvePending(ctx, cr.ID, domain.RequestAccepted)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != domain.RequestAccepted {
		t.Fatalf("status = %s", resolved.Status)
	}

	if _, err := requests.ResolvePending(ctx, cr.ID, domain.RequestRejected); !domain.Is(err, "request_already_resolved") {
		t.Fatalf("second resolve: got %v", err)
	}
	if _, err := requests.ResolvePending(ctx, 9999, domain.RequestAccepted); !domain.Is(err, "request_not_found") {
		t.Fatalf("missing row: got %v", err)
	}
}

func TestRequestRepoHasOpenRequest(t *testing.T) {
	t.Parallel()

	_, requests, individual, ngo := seedParties(t)
	ctx := context.Background()
	cr := pendingRequest(t, requests, individual, ngo)

	open, err := requests.HasOpenRequest(ctx, individual.ID, ngo.ID)
	if err != nil || !open {
		t.Fatalf("pending should count as open: %v %v", open, err)
	}

	if _, err := requests.ResolvePending(ctx, cr.ID, domain.RequestAccepted); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	open, _ = requests.HasOpenRequest(ctx, individual.ID, ngo.ID)
	if !open {
		t.Fatalf("accepted should count as open")
	}

	// Direction matters.
	open, _ = requests.HasOpenRequest(ctx, ngo.ID, individual.ID)
	if open {
		t.Fatalf("reverse direction should not match")
	}
}

func TestRequestRepoHasOpenRequestIgnoresRejected(t *testing.T) {
	t.Parallel()

	_, requests, individual, ngo := seedParties(t)
	ctx := context.Background()
	cr := pendingRequest(t, requests, individual, ngo)

	if _, err := requests.ResolvePending(ctx, cr.ID, domain.RequestRejected); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	open, err := requests.HasOpenRequest(ctx, individual.ID, ngo.ID)
	if err != nil || open {
		t.Fatalf("rejected request should not block: %v %v", open, err)
	}
}

func TestRequestRepoListsJoinProfiles(t *testing.T) {
	t.Parallel()

	users, requests, individual, ngo := seedParties(t)
	ctx := context.Background()
	cr := pendingRequest(t, requests, individual, ngo)

	forTarget, err := requests.ListForTarget(ctx, ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("for target: %v", err)
	}
	if len(forTarget) != 1 || forTarget[0].Party.ID != individual.ID {
		t.Fatalf("target list joins requester: %+v", forTarget)
	}

	forRequester, err := requests.ListForRequester(ctx, individual.ID)
	if err != nil {
		t.Fatalf("for requester: %v", err)
	}
	if len(forRequester) != 1 || forRequester[0].Party.ID != ngo.ID {
		t.Fatalf("requester list joins target: %+v", forRequester)
	}

	// Accepted requests appear for both parties in ListAccepted.
	if _, err := requests.ResolvePending(ctx, cr.ID, domain.RequestAccepted); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	other, err := users.Create(ctx, domain.User{Role: domain.RoleLawyer, Status: domain.StatusVerified, Name: "L", ContactNumber: "1", EnrollmentNumber: "E-1"})
	if err != nil {
		t.Fatalf("seed lawyer: %v", err)
	}

	fromNgo, err := requests.ListAccepted(ctx, ngo.ID, domain.RoleNgo)
	if err != nil || len(fromNgo) != 1 || fromNgo[0].Party.ID != individual.ID {
		t.Fatalf("ngo accepted: %v %+v", err, fromNgo)
	}
	fromIndividual, err := requests.ListAccepted(ctx, individual.ID, domain.RoleIndividual)
	if err != nil || len(fromIndividual) != 1 || fromIndividual[0].Party.ID != ngo.ID {
		t.Fatalf("individual accepted: %v %+v", err, fromIndividual)
	}
	fromOther, err := requests.ListAccepted(ctx, other.ID, domain.RoleLawyer)
	if err != nil || len(fromOther) != 0 {
		t.Fatalf("uninvolved party: %v %+v", err, fromOther)
	}
}

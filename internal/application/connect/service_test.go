package connect

import (
	"context"
	"testing"

	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/infrastructure/memory"
)

type fixture struct {
	svc   *Service
	users *memory.UserRepo

	individual domain.User
	ngo        domain.User
	lawyer     domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepo()
	requests := memory.NewRequestRepo(users)
	f := &fixture{svc: NewService(requests, users), users: users}
	ctx := context.Background()

	var err error
	f.individual, err = users.Create(ctx, domain.User{
		Role: domain.RoleIndividual, Status: domain.StatusVerified,
		Name: "Asha", ContactNumber: "9990001111",
	})
	if err != nil {
		t.Fatalf("seed individual: %v", err)
	}
	f.ngo, err = users.Create(ctx, domain.User{
		Role: domain.RoleNgo, Status: domain.StatusVerified,
		Name: "Helping Hands", Email: "b@ngo.org", RegistrationNumber: "REG-001",
	})
	if err != nil {
		t.Fatalf("seed ngo: %v", err)
	}
	f.lawyer, err = users.Create(ctx, domain.User{
		Role: domain.RoleLawyer, Status: domain.StatusVerified,
		Name: "Counsel", ContactNumber: "9990002222", EnrollmentNumber: "ENR-7",
	})
	if err != nil {
		t.Fatalf("seed lawyer: %v", err)
	}
	return f
}

func TestCreateRequest(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	cr, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cr.Status != domain.RequestPending {
		t.Fatalf("new request status = %s", cr.Status)
	}
	if cr.RequesterID != f.individual.ID || cr.TargetID != f.ngo.ID {
		t.Fatalf("parties: %+v", cr)
	}
	if cr.RequesterRole != domain.RoleIndividual || cr.TargetRole != domain.RoleNgo {
		t.Fatalf("roles: %+v", cr)
	}
}

func TestCreateRequestGuards(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	// Only individuals open requests.
	if _, err := f.svc.CreateRequest(ctx, f.ngo, f.lawyer.ID, domain.RoleLawyer); !domain.Is(err, "forbidden") {
		t.Fatalf("provider as requester: got %v", err)
	}
	// Targets are providers.
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.individual.ID, domain.RoleIndividual); !domain.Is(err, "invalid_field") {
		t.Fatalf("individual as target role: got %v", err)
	}
	// Target must exist.
	if _, err := f.svc.CreateRequest(ctx, f.individual, 9999, domain.RoleNgo); !domain.Is(err, "user_not_found") {
		t.Fatalf("missing target: got %v", err)
	}
	// Claimed role must match the target row.
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleLawyer); !domain.Is(err, "invalid_field") {
		t.Fatalf("role mismatch: got %v", err)
	}
}

func TestCreateRequestDuplicateGuard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Pending blocks a second request to the same target.
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo); !domain.Is(err, "duplicate_request") {
		t.Fatalf("pending duplicate: got %v", err)
	}

	// Accepted blocks too: the pair is already connected.
	if _, err := f.svc.Resolve(ctx, f.ngo, first.ID, domain.RequestAccepted); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo); !domain.Is(err, "duplicate_request") {
		t.Fatalf("accepted duplicate: got %v", err)
	}

	// A different provider is fine.
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.lawyer.ID, domain.RoleLawyer); err != nil {
		t.Fatalf("different target: %v", err)
	}
}

func TestCreateRequestAllowedAfterRejection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	cr, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.Resolve(ctx, f.ngo, cr.ID, domain.RequestRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// A rejected request does not block a fresh attempt.
	if _, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo); err != nil {
		t.Fatalf("retry after rejection: %v", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	cr, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resolved, err := f.svc.Resolve(ctx, f.ngo, cr.ID, domain.RequestAccepted)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != domain.RequestAccepted {
		t.Fatalf("status = %s", resolved.Status)
	}
}

func TestResolveGuards(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	cr, err := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Only terminal statuses are decisions.
	if _, err := f.svc.Resolve(ctx, f.ngo, cr.ID, domain.RequestPending); !domain.Is(err, "invalid_field") {
		t.Fatalf("pending transition: got %v", err)
	}
	// Only the target may decide; another provider is rejected even
	// though its role passes the route gate.
	if _, err := f.svc.Resolve(ctx, f.lawyer, cr.ID, domain.RequestAccepted); !domain.Is(err, "not_request_target") {
		t.Fatalf("wrong target: got %v", err)
	}
	if _, err := f.svc.Resolve(ctx, f.ngo, 9999, domain.RequestAccepted); !domain.Is(err, "request_not_found") {
		t.Fatalf("missing request: got %v", err)
	}

	// Terminal requests stay terminal.
	if _, err := f.svc.Resolve(ctx, f.ngo, cr.ID, domain.RequestAccepted); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := f.svc.Resolve(ctx, f.ngo, cr.ID, domain.RequestRejected); !domain.Is(err, "request_already_resolved") {
		t.Fatalf("re-transition: got %v", err)
	}
}

func TestListAssignedAndMine(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	toNgo, _ := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	toLawyer, _ := f.svc.CreateRequest(ctx, f.individual, f.lawyer.ID, domain.RoleLawyer)

	assigned, err := f.svc.ListAssigned(ctx, f.ngo)
	if err != nil {
		t.Fatalf("assigned: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != toNgo.ID {
		t.Fatalf("ngo queue: %+v", assigned)
	}
	if assigned[0].Party.ID != f.individual.ID || assigned[0].Party.Name != "Asha" {
		t.Fatalf("assigned rows join the requester profile: %+v", assigned[0].Party)
	}

	mine, err := f.svc.ListMine(ctx, f.individual)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("mine: %+v", mine)
	}
	// Newest first.
	if mine[0].ID != toLawyer.ID || mine[1].ID != toNgo.ID {
		t.Fatalf("ordering: %d then %d", mine[0].ID, mine[1].ID)
	}
	if mine[0].Party.ID != f.lawyer.ID {
		t.Fatalf("mine rows join the target profile: %+v", mine[0].Party)
	}
}

// Both parties of an accepted request see the same connection, each
// joined with the other side's profile.
func TestListConnectionsSymmetry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	accepted, _ := f.svc.CreateRequest(ctx, f.individual, f.ngo.ID, domain.RoleNgo)
	pending, _ := f.svc.CreateRequest(ctx, f.individual, f.lawyer.ID, domain.RoleLawyer)
	_ = pending

	if _, err := f.svc.Resolve(ctx, f.ngo, accepted.ID, domain.RequestAccepted); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	fromIndividual, err := f.svc.ListConnections(ctx, f.individual)
	if err != nil {
		t.Fatalf("individual connections: %v", err)
	}
	if len(fromIndividual) != 1 || fromIndividual[0].ID != accepted.ID {
		t.Fatalf("individual sees: %+v", fromIndividual)
	}
	if fromIndividual[0].Party.ID != f.ngo.ID {
		t.Fatalf("individual's party should be the ngo: %+v", fromIndividual[0].Party)
	}

	fromNgo, err := f.svc.ListConnections(ctx, f.ngo)
	if err != nil {
		t.Fatalf("ngo connections: %v", err)
	}
	if len(fromNgo) != 1 || fromNgo[0].ID != accepted.ID {
		t.Fatalf("ngo sees: %+v", fromNgo)
	}
	if fromNgo[0].Party.ID != f.individual.ID {
		t.Fatalf("ngo's party should be the individual: %+v", fromNgo[0].Party)
	}

	// The uninvolved lawyer sees nothing accepted.
	fromLawyer, err := f.svc.ListConnections(ctx, f.lawyer)
	if err != nil {
		t.Fatalf("lawyer connections: %v", err)
	}
	if len(fromLawyer) != 0 {
		t.Fatalf("lawyer sees: %+v", fromLawyer)
	}
}

func TestListProviders(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	// A pending NGO must not appear in the directory.
	if _, err := f.users.Create(ctx, domain.User{
		Role: domain.RoleNgo, Status: domain.StatusPending,
		Name: "Unreviewed Org", RegistrationNumber: "REG-002",
	}); err != nil {
		t.Fatalf("seed pending ngo: %v", err)
	}

	ngos, err := f.svc.ListProviders(ctx, domain.RoleNgo)
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	if len(ngos) != 1 || ngos[0].ID != f.ngo.ID {
		t.Fatalf("directory: %+v", ngos)
	}

	if _, err := f.svc.ListProviders(ctx, domain.RoleAdmin); !domain.Is(err, "invalid_field") {
		t.Fatalf("admin directory: got %v", err)
	}
}

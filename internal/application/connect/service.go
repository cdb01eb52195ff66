package connect

import (
	"context"
	"strconv"

	"github.com/legislate-ai/core-service/internal/domain"
)

// Service is the request/connection engine: individuals open requests
// toward providers, providers resolve them, and accepted requests are
// the connections both sides see.
type Service struct {
	requests RequestRepo
	users    UserDirectory
	audit    func(action string, fields map[string]string)
}

func NewService(requests RequestRepo, users UserDirectory) *Service {
	return &Service{
		requests: requests,
		users:    users,
		audit:    func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// CreateRequest opens a pending request from an individual toward a
// provider. The target row is resolved to confirm it exists and carries
// the claimed role. At most one open (pending or accepted) request may
// link a requester/target pair.
func (s *Service) CreateRequest(ctx context.Context, requester domain.User, targetID int64, targetRole domain.Role) (domain.ConnectionRequest, error) {
	if requester.Role != domain.RoleIndividual {
		return domain.ConnectionRequest{}, domain.ErrForbidden()
	}
	if !targetRole.IsProvider() {
		return domain.ConnectionRequest{}, domain.ErrInvalidField("targetRole", "must be ngo or lawyer")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	if target.Role != targetRole {
		return domain.ConnectionRequest{}, domain.ErrInvalidField("targetRole", "does not match target user")
	}

	open, err := s.requests.HasOpenRequest(ctx, requester.ID, targetID)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	if open {
		return domain.ConnectionRequest{}, domain.ErrDuplicateRequest()
	}

	created, err := s.requests.Create(ctx, domain.ConnectionRequest{
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		TargetID:      targetID,
		TargetRole:    targetRole,
		Status:        domain.RequestPending,
	})
	if err != nil {
		return domain.ConnectionRequest{}, err
	}

	s.audit("request_created", map[string]string{
		"request_id": strconv.FormatInt(created.ID, 10),
		"target_id":  strconv.FormatInt(targetID, 10),
	})
	return created, nil
}

// ListAssigned returns requests targeting a provider, joined with each
// requester's public profile.
func (s *Service) ListAssigned(ctx context.Context, target domain.User) ([]domain.RequestWithParty, error) {
	return s.requests.ListForTarget(ctx, target.ID, target.Role)
}

// ListMine returns an individual's own requests, joined with each
// target's public profile.
func (s *Service) ListMine(ctx context.Context, requester domain.User) ([]domain.RequestWithParty, error) {
	return s.requests.ListForRequester(ctx, requester.ID)
}

// Resolve transitions a pending request to accepted or rejected. Only
// the target may resolve, and a terminal request stays terminal.
func (s *Service) Resolve(ctx context.Context, target domain.User, requestID int64, status domain.RequestStatus) (domain.ConnectionRequest, error) {
	if !status.Terminal() {
		return domain.ConnectionRequest{}, domain.ErrInvalidField("status", "must be accepted or rejected")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}
	if req.TargetID != target.ID || req.TargetRole != target.Role {
		return domain.ConnectionRequest{}, domain.ErrNotRequestTarget()
	}
	if req.Status.Terminal() {
		return domain.ConnectionRequest{}, domain.ErrRequestAlreadyResolved()
	}

	resolved, err := s.requests.ResolvePending(ctx, requestID, status)
	if err != nil {
		return domain.ConnectionRequest{}, err
	}

	s.audit("request_resolved", map[string]string{
		"request_id": strconv.FormatInt(requestID, 10),
		"status":     string(status),
	})
	return resolved, nil
}

// ListConnections returns every accepted request involving the user,
// whichever side they were on, with the other party's public profile.
func (s *Service) ListConnections(ctx context.Context, u domain.User) ([]domain.RequestWithParty, error) {
	return s.requests.ListAccepted(ctx, u.ID, u.Role)
}

// ListProviders is the directory of verified providers shown to
// individuals when picking a request target.
func (s *Service) ListProviders(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !role.IsProvider() {
		return nil, domain.ErrInvalidField("role", "must be ngo or lawyer")
	}
	return s.users.ListByRoleStatus(ctx, role, domain.StatusVerified)
}

package auth

import (
	"context"
	"strconv"

	"github.com/legislate-ai/core-service/internal/domain"
)

// PendingApprovals is the admin review queue, newest first per role.
type PendingApprovals struct {
	Ngos    []domain.User
	Lawyers []domain.User
}

func (s *Service) Stats(ctx context.Context) (domain.UserCounts, error) {
	return s.users.Counts(ctx)
}

func (s *Service) ListPendingApprovals(ctx context.Context) (PendingApprovals, error) {
	ngos, err := s.users.ListByRoleStatus(ctx, domain.RoleNgo, domain.StatusPending)
	if err != nil {
		return PendingApprovals{}, err
	}
	lawyers, err := s.users.ListByRoleStatus(ctx, domain.RoleLawyer, domain.StatusPending)
	if err != nil {
		return PendingApprovals{}, err
	}
	return PendingApprovals{Ngos: ngos, Lawyers: lawyers}, nil
}

// Decide applies an admin verification decision. Re-applying the same
// decision is a state no-op, not an error.
func (s *Service) Decide(ctx context.Context, userID int64, action domain.Status) (domain.User, error) {
	if action != domain.StatusVerified && action != domain.StatusRejected {
		return domain.User{}, domain.ErrInvalidField("action", "must be verified or rejected")
	}

	u, err := s.users.UpdateStatus(ctx, userID, action)
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user_status_decided", map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"action":  string(action),
	})
	return u, nil
}

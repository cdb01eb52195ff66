package connect

import (
	"context"

	"github.com/legislate-ai/core-service/internal/domain"
)

/*
RequestRepo
-----------
Persistence port for connection requests. List methods return rows
joined with the counterpart's public profile, newest first.
*/
type RequestRepo interface {
	Create(ctx context.Context, r domain.ConnectionRequest) (domain.ConnectionRequest, error)
	GetByID(ctx context.Context, id int64) (domain.ConnectionRequest, error)

	// ResolvePending transitions a pending request to a terminal status
	// as a single atomic row update; it fails if the row is no longer
	// pending, so two concurrent decisions cannot both win.
	ResolvePending(ctx context.Context, id int64, status domain.RequestStatus) (domain.ConnectionRequest, error)

	ListForTarget(ctx context.Context, targetID int64, targetRole domain.Role) ([]domain.RequestWithParty, error)
	ListForRequester(ctx context.Context, requesterID int64) ([]domain.RequestWithParty, error)
	ListAccepted(ctx context.Context, userID int64, userRole domain.Role) ([]domain.RequestWithParty, error)

	// HasOpenRequest reports whether a pending or accepted request
	// already links requester and target.
	HasOpenRequest(ctx context.Context, requesterID, targetID int64) (bool, error)
}

/*
UserDirectory
-------------
Read-only slice of the user store the engine needs: target resolution
and the provider directory shown to individuals.
*/
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
	ListByRoleStatus(ctx context.Context, role domain.Role, status domain.Status) ([]domain.User, error)
}

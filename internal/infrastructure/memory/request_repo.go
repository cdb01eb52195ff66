package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

// RequestRepo is the in-memory counterpart of the postgres request
// store, joining parties out of a UserRepo.
type RequestRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.ConnectionRequest

	users *UserRepo
}

func NewRequestRepo(users *UserRepo) *RequestRepo {
	return &RequestRepo{
		byID:  make(map[int64]domain.ConnectionRequest),
		users: users,
	}
}

func (r *RequestRepo) Create(ctx context.Context, cr domain.ConnectionRequest) (domain.ConnectionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	cr.ID = r.nextID
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = time.Now()
	}
	r.byID[cr.ID] = cr
	return cr, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (domain.ConnectionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cr, ok := r.byID[id]
	if !ok {
		return domain.ConnectionRequest{}, domain.ErrRequestNotFound()
	}
	return cr, nil
}

func (r *RequestRepo) ResolvePending(ctx context.Context, id int64, status domain.RequestStatus) (domain.ConnectionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cr, ok := r.byID[id]
	if !ok {
		return domain.ConnectionRequest{}, domain.ErrRequestNotFound()
	}
	if cr.Status != domain.RequestPending {
		return domain.ConnectionRequest{}, domain.ErrRequestAlreadyResolved()
	}
	cr.Status = status
	r.byID[id] = cr
	return cr, nil
}

func (r *RequestRepo) ListForTarget(ctx context.Context, targetID int64, targetRole domain.Role) ([]domain.RequestWithParty, error) {
	return r.list(ctx, func(cr domain.ConnectionRequest) (int64, bool) {
		if cr.TargetID == targetID && cr.TargetRole == targetRole {
			return cr.RequesterID, true
		}
		return 0, false
	})
}

func (r *RequestRepo) ListForRequester(ctx context.Context, requesterID int64) ([]domain.RequestWithParty, error) {
	return r.list(ctx, func(cr domain.ConnectionRequest) (int64, bool) {
		if cr.RequesterID == requesterID {
			return cr.TargetID, true
		}
		return 0, false
	})
}

func (r *RequestRepo) ListAccepted(ctx context.Context, userID int64, userRole domain.Role) ([]domain.RequestWithParty, error) {
	return r.list(ctx, func(cr domain.ConnectionRequest) (int64, bool) {
		if cr.Status != domain.RequestAccepted {
			return 0, false
		}
		if cr.RequesterID == userID {
			return cr.TargetID, true
		}
		if cr.TargetID == userID && cr.TargetRole == userRole {
			return cr.RequesterID, true
		}
		return 0, false
	})
}

func (r *RequestRepo) HasOpenRequest(ctx context.Context, requesterID, targetID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cr := range r.byID {
		if cr.RequesterID != requesterID || cr.TargetID != targetID {
			continue
		}
		if cr.Status == domain.RequestPending || cr.Status == domain.RequestAccepted {
			return true, nil
		}
	}
	return false, nil
}

// list filters requests and joins the selected party's public profile.
func (r *RequestRepo) list(ctx context.Context, match func(domain.ConnectionRequest) (partyID int64, ok bool)) ([]domain.RequestWithParty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.RequestWithParty
	for _, cr := range r.byID {
		partyID, ok := match(cr)
		if !ok {
			continue
		}
		party, err := r.users.GetByID(ctx, partyID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.RequestWithParty{
			ConnectionRequest: cr,
			Party:             party.PublicProfile(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

// UserRepo is an in-memory stand-in for the postgres user store,
// mirroring its per-role identifier uniqueness. Used by unit tests and
// handler tests; production always runs on postgres.
type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byID: make(map[int64]domain.User)}
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !domain.IsValidRole(string(u.Role)) {
		return domain.User{}, domain.ErrInvalidField("role", "unknown role")
	}
	if u.Status == "" {
		u.Status = domain.StatusPending
	}

	id := u.LoginIdentifier()
	for _, other := range r.byID {
		if other.Role == u.Role && id != "" && other.LoginIdentifier() == id {
			return domain.User{}, domain.ErrIdentifierTaken("identifier")
		}
	}

	r.nextID++
	u.ID = r.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) GetByRoleIdentifier(ctx context.Context, role domain.Role, identifier string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Role == role && identifier != "" && u.LoginIdentifier() == identifier {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *UserRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.Status = status
	r.byID[id] = u
	return u, nil
}

func (r *UserRepo) UpdateTotpSecret(ctx context.Context, id int64, secret string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.TotpSecret = secret
	r.byID[id] = u
	return u, nil
}

func (r *UserRepo) ListByRoleStatus(ctx context.Context, role domain.Role, status domain.Status) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.User
	for _, u := range r.byID {
		if u.Role == role && u.Status == status {
			out = append(out, u)
		}
	}
	// newest first, matching the store's ordering
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *UserRepo) Counts(ctx context.Context) (domain.UserCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var c domain.UserCounts
	for _, u := range r.byID {
		c.TotalUsers++
		switch {
		case u.Role == domain.RoleNgo && u.Status == domain.StatusVerified:
			c.VerifiedNgos++
		case u.Role == domain.RoleLawyer && u.Status == domain.StatusVerified:
			c.VerifiedLawyers++
		case u.Role == domain.RoleIndividual:
			c.Individuals++
		}
	}
	return c, nil
}

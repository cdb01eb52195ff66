package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

// fakeUserRepo is the in-test stand-in for the persistence port. It
// mirrors the real store's per-role identifier uniqueness and
// newest-first listing so flow tests exercise the same edges.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User

	createErr error
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	for _, existing := range f.users {
		if existing.Role == u.Role && existing.LoginIdentifier() == u.LoginIdentifier() {
			return domain.User{}, domain.ErrIdentifierTaken("identifier")
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByRoleIdentifier(ctx context.Context, role domain.Role, identifier string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return domain.User{}, f.lookupErr
	}
	for _, u := range f.users {
		if u.Role == role && u.LoginIdentifier() == identifier {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.Status = status
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateTotpSecret(ctx context.Context, id int64, secret string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.TotpSecret = secret
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) ListByRoleStatus(ctx context.Context, role domain.Role, status domain.Status) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, u := range f.users {
		if u.Role == role && u.Status == status {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Counts(ctx context.Context) (domain.UserCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var c domain.UserCounts
	for _, u := range f.users {
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

// fakeHasher marks hashes with a prefix instead of doing real bcrypt.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

// fakeSigner issues inspectable tokens of the form "token-<id>".
type fakeSigner struct {
	signErr error
	lastTTL time.Duration
}

func (f *fakeSigner) SignSessionToken(u domain.User, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.lastTTL = ttl
	return fmt.Sprintf("token-%d", u.ID), nil
}

func (f *fakeSigner) VerifySessionToken(token string) (TokenClaims, error) {
	var id int64
	if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	return TokenClaims{UserID: id, Exp: time.Now().Add(time.Hour)}, nil
}

// fakeTotp accepts one good code per secret.
type fakeTotp struct {
	generateErr error
	generated   int
}

func (f *fakeTotp) GenerateSecret(label string) (TotpEnrollment, error) {
	if f.generateErr != nil {
		return TotpEnrollment{}, f.generateErr
	}
	f.generated++
	return TotpEnrollment{
		Base32:     "SECRET-" + label,
		OtpauthURL: "otpauth://totp/" + label,
		QRCode:     "data:image/png;base64,ZmFrZQ==",
	}, nil
}

func (f *fakeTotp) Verify(code, secret string) bool {
	return code == "123456" && secret != ""
}

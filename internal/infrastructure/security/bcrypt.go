package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/legislate-ai/core-service/internal/domain"
)

// BcryptHasher hashes admin and individual passwords. Providers never
// carry a password, so the cost only affects those two flows.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns bcrypt's mismatch error untranslated; callers decide
// whether a mismatch is invalid_credentials or something else.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

package postgres

import (
	"context"

	"github.com/legislate-ai/core-service/internal/config"
	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/logger"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	GetByRoleIdentifier(ctx context.Context, role domain.Role, identifier string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedDefaultAdmin provisions the bootstrap admin on an empty store.
// The account is verified but carries no TOTP secret yet; the
// setup-totp flow adds one. Restart safe: an existing admin row under
// the seed adminname short-circuits.
func SeedDefaultAdmin(ctx context.Context, repo SeederRepo, hasher SeederHasher, seed config.AdminSeed) error {
	if _, err := repo.GetByRoleIdentifier(ctx, domain.RoleAdmin, seed.AdminName); err == nil {
		return nil
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, domain.User{
		Role:         domain.RoleAdmin,
		Status:       domain.StatusVerified,
		Name:         seed.Name,
		AdminName:    seed.AdminName,
		UID:          seed.UID,
		Email:        seed.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// A concurrent boot may have won the insert; that is fine.
		if domain.Is(err, "identifier_taken") {
			return nil
		}
		return err
	}

	logger.Logger.Info().Str("adminname", seed.AdminName).Msg("default admin seeded")
	return nil
}

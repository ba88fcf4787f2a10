// Package seed holds the bootstrap admin seeder. It runs once at startup,
// before the HTTP listener accepts connections.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"shopfront/api/internal/config"
	"shopfront/api/internal/ids"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/security"
)

// UserStore is the slice of the user repository the seeder needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.User) error
}

// EnsureAdmin find-or-creates the administrator account. It is idempotent:
// an existing admin is left untouched, password included. A concurrent
// create racing another process loses to the unique index and is treated as
// "already present".
func EnsureAdmin(ctx context.Context, users UserStore, cfg config.SeedConfig, log zerolog.Logger) error {
	_, err := users.FindByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		log.Info().Str("username", cfg.AdminUsername).Msg("admin account already present")
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	passwordHash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           ids.New(),
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			log.Info().Str("username", cfg.AdminUsername).Msg("admin account already present")
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	log.Info().Str("username", cfg.AdminUsername).Msg("admin account created")
	if cfg.AdminPassword == config.DefaultAdminPassword {
		log.Warn().Msg("admin account uses the default password, change it")
	}
	return nil
}

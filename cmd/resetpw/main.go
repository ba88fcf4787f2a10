// Command resetpw resets one user's password. It is an operator tool and is
// never exposed over HTTP.
package main

import (
	"context"
	"flag"

	"shopfront/api/internal/config"
	"shopfront/api/internal/database"
	"shopfront/api/internal/log"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/security"
)

func main() {
	username := flag.String("username", "", "account to reset")
	password := flag.String("password", "", "new plaintext password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	if *username == "" || *password == "" {
		logger.Fatal().Msg("both -username and -password are required")
	}

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer dbPool.Close()

	users := repository.NewUserRepository(dbPool)

	user, err := users.FindByUsername(ctx, *username)
	if err != nil {
		logger.Fatal().Err(err).Str("username", *username).Msg("user lookup failed")
	}

	passwordHash, err := security.HashPassword(*password)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash password failed")
	}

	if err := users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		logger.Fatal().Err(err).Msg("update password failed")
	}

	logger.Info().Str("username", *username).Msg("password reset")
}

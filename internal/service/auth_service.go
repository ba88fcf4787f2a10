package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"shopfront/api/internal/config"
	"shopfront/api/internal/ids"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/security"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) error
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

// Register creates a self-service account with the user role. The duplicate
// check is an optimization; the store's unique index is authoritative.
func (s *AuthService) Register(ctx context.Context, username string, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return models.User{}, repository.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	return s.createUser(ctx, username, password, models.RoleUser)
}

type LoginResult struct {
	Token    string
	Username string
	Role     models.Role
}

func (s *AuthService) Login(ctx context.Context, username string, password string) (LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		user.Username,
		string(user.Role),
		s.cfg.Security.TokenTTL,
	)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// CreateUser is the admin path: same uniqueness and hashing discipline as
// Register, but the role is caller-specified.
func (s *AuthService) CreateUser(ctx context.Context, username string, password string, role string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.createUser(ctx, username, password, parsed)
}

func (s *AuthService) SetRole(ctx context.Context, userID string, role string) (models.Role, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.users.UpdateRole(ctx, userID, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

func (s *AuthService) createUser(ctx context.Context, username string, password string, role models.Role) (models.User, error) {
	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user created")
	return user, nil
}

// Package auth implements user registration, password login and profile
// lookup. Tokens are stateless access tokens; there is no refresh flow.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenIssuer defines the JWT interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}

// issueToken generates an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// Authenticator resolves a bearer token into an Identity. Implementations are
// chosen once at startup; request handling never branches on the mode.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// TokenAuthenticator validates signed access tokens.
type TokenAuthenticator struct {
	jwt *JWTManager
}

func NewTokenAuthenticator(jwt *JWTManager) *TokenAuthenticator {
	return &TokenAuthenticator{jwt: jwt}
}

func (a *TokenAuthenticator) Authenticate(_ context.Context, token string) (Identity, error) {
	userID, role, err := a.jwt.ValidateAccessToken(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	r := domain.UserRole(role)
	if !r.IsValid() {
		r = domain.UserRoleUser
	}
	return Identity{UserID: userID, Role: r}, nil
}

// StaticAuthenticator accepts every request as a fixed identity.
// For local development only; config validation forbids it in production.
type StaticAuthenticator struct {
	identity Identity
}

func NewStaticAuthenticator(identity Identity) *StaticAuthenticator {
	return &StaticAuthenticator{identity: identity}
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, _ string) (Identity, error) {
	return a.identity, nil
}

// NewAuthenticator builds the strategy selected by cfg.Mode.
func NewAuthenticator(cfg config.AuthConfig, jwt *JWTManager) (Authenticator, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		return NewTokenAuthenticator(jwt), nil
	case config.AuthModeStatic:
		id, err := uuid.Parse(cfg.StaticUserID)
		if err != nil {
			return nil, fmt.Errorf("static user id: %w", err)
		}
		return NewStaticAuthenticator(Identity{UserID: id, Role: domain.UserRole(cfg.StaticRole)}), nil
	}
	return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/buildline/crm-backend/internal/domain"
)

const duplicateEmailMessage = "User with this email already exists"

// Register creates a new user with the user role and returns an access token.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Reject known emails before paying for the hash
	taken, err := s.users.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Register check email: %w", err)
	}
	if taken {
		return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user. The unique index catches concurrent registrations.
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 5: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return result, nil
}

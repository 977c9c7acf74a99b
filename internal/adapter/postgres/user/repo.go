// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const selectColumns = `id, email, name, password_hash, role, created_at, updated_at`

const getByIDSQL = `SELECT ` + selectColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + selectColumns + ` FROM users WHERE lower(email) = lower($1)`

const emailTakenSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`

const insertSQL = `
INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + selectColumns

const setRoleSQL = `UPDATE users SET role = $2, updated_at = now() WHERE lower(email) = lower($1) AND role <> $2`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// EmailTaken reports whether any user is registered with email.
func (r *Repo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, emailTakenSQL, email).Scan(&taken); err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return taken, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &created, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// SetRole changes the role of the user registered with email. It reports
// false when no user matched or the user already had the role.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.UserRole) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setRoleSQL, email, role)
	if err != nil {
		return false, postgres.MapError(err, "user", uuid.Nil)
	}
	return tag.RowsAffected() > 0, nil
}

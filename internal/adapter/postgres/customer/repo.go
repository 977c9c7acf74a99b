// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const selectColumns = `id, first_name, last_name, name, email, phone, company,
    address, status, notes, created_at, updated_at`

var listSpec = postgres.ListSpec{
	From: "customers",
	Columns: []string{
		"id", "first_name", "last_name", "name", "email", "phone", "company",
		"address", "status", "notes", "created_at", "updated_at",
	},
	SearchColumns: []string{"first_name", "last_name", "name", "email", "company", "phone"},
	StatusColumn:  "status",
	DateColumn:    "created_at",
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"firstName": "first_name",
		"lastName":  "last_name",
		"company":   "company",
		"email":     "email",
		"status":    "status",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: domain.SortDesc,
}

const getByIDSQL = `SELECT ` + selectColumns + ` FROM customers WHERE id = $1`

const emailTakenSQL = `SELECT EXISTS(SELECT 1 FROM customers WHERE lower(email) = lower($1) AND id <> $2)`

const insertSQL = `
INSERT INTO customers (
    id, first_name, last_name, name, email, phone, company, address, status, notes,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING ` + selectColumns

const updateSQL = `
UPDATE customers SET
    first_name = $2, last_name = $3, name = $4, email = $5, phone = $6,
    company = $7, address = $8, status = $9, notes = $10, updated_at = $11
WHERE id = $1
RETURNING ` + selectColumns

const deleteSQL = `DELETE FROM customers WHERE id = $1`

// GetByID returns a customer by primary key.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := scanCustomer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return &c, nil
}

// List returns one page of customers matching the filter.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Customer], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanCustomer)
	if err != nil {
		return domain.Page[domain.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	return page, nil
}

// ListInRange returns up to limit customers created within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Customer, error) {
	items, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("list customers in range: %w", err)
	}
	return items, nil
}

// EmailTaken reports whether another customer (not excludeID) uses email.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, emailTakenSQL, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check customer email: %w", err)
	}
	return taken, nil
}

// Create inserts a new customer.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		c.ID, c.FirstName, c.LastName, c.Name, c.Email, c.Phone, c.Company,
		c.Address, c.Status, c.Notes, c.CreatedAt,
	)
	created, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return &created, nil
}

// Update overwrites every mutable column of the customer.
func (r *Repo) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL,
		c.ID, c.FirstName, c.LastName, c.Name, c.Email, c.Phone, c.Company,
		c.Address, c.Status, c.Notes, c.UpdatedAt,
	)
	updated, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}
	return &updated, nil
}

// Delete removes a customer permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of customers.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountAll(ctx, postgres.QuerierFromCtx(ctx, r.db), "customers")
}

// CountByStatus groups customers by status.
func (r *Repo) CountByStatus(ctx context.Context) ([]postgres.Bucket, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), "customers", "status")
}

// CountByMonth groups customers created at or after since by calendar month.
func (r *Repo) CountByMonth(ctx context.Context, since time.Time) ([]postgres.Bucket, error) {
	return postgres.CountByMonth(ctx, postgres.QuerierFromCtx(ctx, r.db), "customers", "created_at", since)
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Address, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Package lead implements the Lead repository using PostgreSQL.
package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lead repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "name", "email", "phone", "company", "source", "status",
	"estimated_value", "notes", "assigned_to", "last_contact_date",
	"next_follow_up", "converted_customer_id", "created_at", "updated_at",
}

var listSpec = postgres.ListSpec{
	From:          "leads",
	Columns:       columns,
	SearchColumns: []string{"name", "email", "company"},
	StatusColumn:  "status",
	DateColumn:    "created_at",
	SortColumns: map[string]string{
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"name":           "name",
		"company":        "company",
		"status":         "status",
		"estimatedValue": "estimated_value",
		"nextFollowUp":   "next_follow_up",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: domain.SortDesc,
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const selectColumns = `id, name, email, phone, company, source, status,
    estimated_value, notes, assigned_to, last_contact_date,
    next_follow_up, converted_customer_id, created_at, updated_at`

const getByIDSQL = `SELECT ` + selectColumns + ` FROM leads WHERE id = $1`

const listByStatusSQL = `SELECT ` + selectColumns + ` FROM leads WHERE status = $1 ORDER BY created_at DESC`

const emailTakenSQL = `SELECT EXISTS(SELECT 1 FROM leads WHERE lower(email) = lower($1) AND id <> $2)`

const insertSQL = `
INSERT INTO leads (
    id, name, email, phone, company, source, status, estimated_value, notes,
    assigned_to, last_contact_date, next_follow_up, converted_customer_id,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
RETURNING ` + selectColumns

const updateSQL = `
UPDATE leads SET
    name = $2, email = $3, phone = $4, company = $5, source = $6, status = $7,
    estimated_value = $8, notes = $9, assigned_to = $10, last_contact_date = $11,
    next_follow_up = $12, converted_customer_id = $13, updated_at = $14
WHERE id = $1
RETURNING ` + selectColumns

const deleteSQL = `DELETE FROM leads WHERE id = $1`

const summarySQL = `
SELECT status, count(*), COALESCE(sum(estimated_value), 0)
FROM leads
GROUP BY status
ORDER BY status`

const countSQL = `SELECT count(*) FROM leads`

const countSinceSQL = `SELECT count(*) FROM leads WHERE created_at >= $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a lead by primary key.
// Returns domain.ErrNotFound if the lead does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, err := scanLead(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}
	return &l, nil
}

// List returns one page of leads matching the filter.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Lead], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanLead)
	if err != nil {
		return domain.Page[domain.Lead]{}, fmt.Errorf("list leads: %w", err)
	}
	return page, nil
}

// ListByStatus returns every lead with exactly the given status.
func (r *Repo) ListByStatus(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	leads, err := postgres.Collect(ctx, postgres.QuerierFromCtx(ctx, r.db), listByStatusSQL, []any{status}, scanLead)
	if err != nil {
		return nil, fmt.Errorf("list leads by status: %w", err)
	}
	return leads, nil
}

// ListInRange returns up to limit leads created within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Lead, error) {
	leads, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanLead)
	if err != nil {
		return nil, fmt.Errorf("list leads in range: %w", err)
	}
	return leads, nil
}

// EmailTaken reports whether another lead (not excludeID) uses email,
// compared case-insensitively.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, emailTakenSQL, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check lead email: %w", err)
	}
	return taken, nil
}

// Summary groups all leads by status.
func (r *Repo) Summary(ctx context.Context) ([]domain.LeadStatusSummary, error) {
	groups, err := postgres.Collect(ctx, postgres.QuerierFromCtx(ctx, r.db), summarySQL, nil, func(row pgx.Row) (domain.LeadStatusSummary, error) {
		var s domain.LeadStatusSummary
		err := row.Scan(&s.Status, &s.Count, &s.TotalValue)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("lead summary: %w", err)
	}
	return groups, nil
}

// Count returns the total number of leads.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// CountSince returns the number of leads created at or after t.
func (r *Repo) CountSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSinceSQL, t).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recent leads: %w", err)
	}
	return n, nil
}

// CountByMonth groups leads created at or after since by calendar month.
func (r *Repo) CountByMonth(ctx context.Context, since time.Time) ([]postgres.Bucket, error) {
	return postgres.CountByMonth(ctx, postgres.QuerierFromCtx(ctx, r.db), "leads", "created_at", since)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new lead.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, insertSQL,
		l.ID, l.Name, l.Email, l.Phone, l.Company, l.Source, l.Status,
		l.EstimatedValue, l.Notes, l.AssignedTo, l.LastContactDate,
		l.NextFollowUp, l.ConvertedCustomerID, l.CreatedAt,
	)
	created, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", l.ID)
	}
	return &created, nil
}

// Update overwrites every mutable column of the lead.
// Returns domain.ErrNotFound if the lead does not exist.
func (r *Repo) Update(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, updateSQL,
		l.ID, l.Name, l.Email, l.Phone, l.Company, l.Source, l.Status,
		l.EstimatedValue, l.Notes, l.AssignedTo, l.LastContactDate,
		l.NextFollowUp, l.ConvertedCustomerID, l.UpdatedAt,
	)
	updated, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", l.ID)
	}
	return &updated, nil
}

// Delete removes a lead permanently.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "lead", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Source, &l.Status,
		&l.EstimatedValue, &l.Notes, &l.AssignedTo, &l.LastContactDate,
		&l.NextFollowUp, &l.ConvertedCustomerID, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

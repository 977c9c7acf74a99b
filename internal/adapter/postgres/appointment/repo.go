// Package appointment implements the Appointment repository using PostgreSQL.
// Reads join customers so each appointment carries the customer's display name.
package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides appointment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new appointment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const from = `appointments a LEFT JOIN customers c ON c.id = a.customer_id`

const customerName = `COALESCE(NULLIF(trim(c.first_name || ' ' || c.last_name), ''), c.name, '')`

var columns = []string{
	"a.id", "a.title", "a.description", "a.customer_id", customerName,
	"a.date", "a.start_time", "a.end_time", "a.location", "a.status",
	"a.notes", "a.created_at", "a.updated_at",
}

var listSpec = postgres.ListSpec{
	From:          from,
	Columns:       columns,
	SearchColumns: []string{"a.title", "a.description", "a.location", "c.first_name", "c.last_name", "c.name"},
	StatusColumn:  "a.status",
	DateColumn:    "a.date",
	SortColumns: map[string]string{
		"date":      "a.date",
		"title":     "a.title",
		"status":    "a.status",
		"createdAt": "a.created_at",
	},
	DefaultSort:  "date",
	DefaultOrder: domain.SortAsc,
}

const insertSQL = `
INSERT INTO appointments (
    id, title, description, customer_id, date, start_time, end_time,
    location, status, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

const updateSQL = `
UPDATE appointments SET
    title = $2, description = $3, customer_id = $4, date = $5, start_time = $6,
    end_time = $7, location = $8, status = $9, notes = $10, updated_at = $11
WHERE id = $1`

const deleteSQL = `DELETE FROM appointments WHERE id = $1`

// GetByID returns an appointment with its customer name populated.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	sql, args, err := postgres.Psql.Select(columns...).From(from).Where("a.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get appointment: %w", err)
	}
	a, err := scanAppointment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "appointment", id)
	}
	return &a, nil
}

// List returns one page of appointments. Default order is date ascending.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanAppointment)
	if err != nil {
		return domain.Page[domain.Appointment]{}, fmt.Errorf("list appointments: %w", err)
	}
	return page, nil
}

// ListInRange returns up to limit appointments dated within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Appointment, error) {
	items, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanAppointment)
	if err != nil {
		return nil, fmt.Errorf("list appointments in range: %w", err)
	}
	return items, nil
}

// Create inserts a new appointment and returns it re-read with the customer name.
func (r *Repo) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		a.ID, a.Title, a.Description, a.CustomerID, a.Date, a.StartTime, a.EndTime,
		a.Location, a.Status, a.Notes, a.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "appointment", a.ID)
	}
	return r.GetByID(ctx, a.ID)
}

// Update overwrites every mutable column of the appointment.
func (r *Repo) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		a.ID, a.Title, a.Description, a.CustomerID, a.Date, a.StartTime, a.EndTime,
		a.Location, a.Status, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "appointment", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("appointment %s: %w", a.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, a.ID)
}

// Delete removes an appointment permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "appointment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of appointments.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountAll(ctx, postgres.QuerierFromCtx(ctx, r.db), "appointments")
}

// CountByStatus groups appointments by status.
func (r *Repo) CountByStatus(ctx context.Context) ([]postgres.Bucket, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), "appointments", "status")
}

func scanAppointment(row pgx.Row) (domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.CustomerID, &a.CustomerName,
		&a.Date, &a.StartTime, &a.EndTime, &a.Location, &a.Status,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

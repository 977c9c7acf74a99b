// Package asset implements the Asset repository using PostgreSQL.
package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides asset persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new asset repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const from = `assets s LEFT JOIN employees e ON e.id = s.assigned_to`

var columns = []string{
	"s.id", "s.name", "s.category", "s.serial_number", "s.status", "s.location",
	"s.purchase_date", "s.value", "s.assigned_to",
	"COALESCE(trim(e.first_name || ' ' || e.last_name), '')",
	"s.notes", "s.created_at", "s.updated_at",
}

var listSpec = postgres.ListSpec{
	From:           from,
	Columns:        columns,
	SearchColumns:  []string{"s.name", "s.serial_number", "s.location"},
	StatusColumn:   "s.status",
	CategoryColumn: "s.category",
	DateColumn:     "s.purchase_date",
	SortColumns: map[string]string{
		"createdAt":    "s.created_at",
		"name":         "s.name",
		"category":     "s.category",
		"status":       "s.status",
		"value":        "s.value",
		"purchaseDate": "s.purchase_date",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: domain.SortDesc,
}

const serialTakenSQL = `SELECT EXISTS(SELECT 1 FROM assets WHERE serial_number = $1 AND id <> $2)`

const insertSQL = `
INSERT INTO assets (
    id, name, category, serial_number, status, location, purchase_date,
    value, assigned_to, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

const updateSQL = `
UPDATE assets SET
    name = $2, category = $3, serial_number = $4, status = $5, location = $6,
    purchase_date = $7, value = $8, assigned_to = $9, notes = $10, updated_at = $11
WHERE id = $1`

const deleteSQL = `DELETE FROM assets WHERE id = $1`

// GetByID returns an asset with the assignee's name populated.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	sql, args, err := postgres.Psql.Select(columns...).From(from).Where("s.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get asset: %w", err)
	}
	a, err := scanAsset(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "asset", id)
	}
	return &a, nil
}

// List returns one page of assets matching the filter.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Asset], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanAsset)
	if err != nil {
		return domain.Page[domain.Asset]{}, fmt.Errorf("list assets: %w", err)
	}
	return page, nil
}

// ListInRange returns up to limit assets purchased within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Asset, error) {
	items, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanAsset)
	if err != nil {
		return nil, fmt.Errorf("list assets in range: %w", err)
	}
	return items, nil
}

// SerialTaken reports whether another asset (not excludeID) has serial.
func (r *Repo) SerialTaken(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, serialTakenSQL, serial, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check asset serial: %w", err)
	}
	return taken, nil
}

// Create inserts a new asset.
func (r *Repo) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		a.ID, a.Name, a.Category, a.SerialNumber, a.Status, a.Location, a.PurchaseDate,
		a.Value, a.AssignedTo, a.Notes, a.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "asset", a.ID)
	}
	return r.GetByID(ctx, a.ID)
}

// Update overwrites every mutable column of the asset.
func (r *Repo) Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		a.ID, a.Name, a.Category, a.SerialNumber, a.Status, a.Location, a.PurchaseDate,
		a.Value, a.AssignedTo, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "asset", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("asset %s: %w", a.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, a.ID)
}

// Delete removes an asset permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "asset", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of assets.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountAll(ctx, postgres.QuerierFromCtx(ctx, r.db), "assets")
}

// CountByStatus groups assets by status.
func (r *Repo) CountByStatus(ctx context.Context) ([]postgres.Bucket, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), "assets", "status")
}

func scanAsset(row pgx.Row) (domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.SerialNumber, &a.Status, &a.Location,
		&a.PurchaseDate, &a.Value, &a.AssignedTo, &a.AssignedToName,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

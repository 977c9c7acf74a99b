// Package document implements the Document metadata repository using PostgreSQL.
// File content lives in blob storage; rows keep only the storage key.
package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const from = `documents d LEFT JOIN customers c ON c.id = d.customer_id`

const customerName = `COALESCE(NULLIF(trim(c.first_name || ' ' || c.last_name), ''), c.name, '')`

var columns = []string{
	"d.id", "d.title", "d.description", "d.category", "d.tags", "d.file_name",
	"d.content_type", "d.size", "d.storage_key", "d.uploaded_by", "d.customer_id",
	customerName, "d.created_at", "d.updated_at",
}

var listSpec = postgres.ListSpec{
	From:           from,
	Columns:        columns,
	FullText:       "d.search_vector",
	CategoryColumn: "d.category",
	DateColumn:     "d.created_at",
	SortColumns: map[string]string{
		"createdAt": "d.created_at",
		"title":     "d.title",
		"category":  "d.category",
		"size":      "d.size",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: domain.SortDesc,
}

// searchVector is recomputed on every write from title, description and tags.
const searchVector = `to_tsvector('simple', $2 || ' ' || $3 || ' ' || array_to_string($5::text[], ' '))`

const insertSQL = `
INSERT INTO documents (
    id, title, description, category, tags, file_name, content_type, size,
    storage_key, uploaded_by, customer_id, search_vector, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, ` + searchVector + `, $12, $12)`

const updateSQL = `
UPDATE documents SET
    title = $2, description = $3, category = $4, tags = $5,
    customer_id = $6, search_vector = ` + searchVector + `, updated_at = $7
WHERE id = $1`

const deleteSQL = `DELETE FROM documents WHERE id = $1`

// GetByID returns a document with its customer name populated.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	sql, args, err := postgres.Psql.Select(columns...).From(from).Where("d.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get document: %w", err)
	}
	d, err := scanDocument(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return &d, nil
}

// List returns one page of documents. Search uses the full-text index.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanDocument)
	if err != nil {
		return domain.Page[domain.Document]{}, fmt.Errorf("list documents: %w", err)
	}
	return page, nil
}

// ListInRange returns up to limit documents uploaded within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Document, error) {
	items, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("list documents in range: %w", err)
	}
	return items, nil
}

// Create inserts document metadata.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		d.ID, d.Title, d.Description, d.Category, tagsOrEmpty(d.Tags), d.FileName,
		d.ContentType, d.Size, d.StorageKey, d.UploadedBy, d.CustomerID, d.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "document", d.ID)
	}
	return r.GetByID(ctx, d.ID)
}

// Update rewrites the editable metadata. File fields are immutable.
func (r *Repo) Update(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		d.ID, d.Title, d.Description, d.Category, tagsOrEmpty(d.Tags), d.CustomerID, d.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "document", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("document %s: %w", d.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, d.ID)
}

// Delete removes document metadata.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountAll(ctx, postgres.QuerierFromCtx(ctx, r.db), "documents")
}

// CountByCategory groups documents by category.
func (r *Repo) CountByCategory(ctx context.Context) ([]postgres.Bucket, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), "documents", "category")
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var d domain.Document
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.Category, &d.Tags, &d.FileName,
		&d.ContentType, &d.Size, &d.StorageKey, &d.UploadedBy, &d.CustomerID,
		&d.CustomerName, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

// GetDocument returns document metadata by id.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	d, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// ListDocuments returns one page of documents. Search runs against the
// full-text index over title, description and tags.
func (s *Service) ListDocuments(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error) {
	if f.Category != "" && f.Category != domain.FilterAll && !domain.DocumentCategory(f.Category).IsValid() {
		return domain.Page[domain.Document]{}, domain.NewValidationError("category", "Invalid document category")
	}
	return s.documents.List(ctx, f)
}

// Upload stores the file content and then its metadata. If the metadata
// insert fails the stored blob is removed again.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	input.normalize()
	if err := input.validate(s.maxSize); err != nil {
		return nil, err
	}

	contentType, body, err := sniff(input.Body, input.ContentType, input.FileName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := uuid.New()
	doc := &domain.Document{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Category:    domain.DocumentCategoryOther,
		Tags:        input.Tags,
		FileName:    input.FileName,
		ContentType: contentType,
		Size:        input.Size,
		StorageKey:  id.String(),
		CustomerID:  input.CustomerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Category != "" {
		doc.Category = domain.DocumentCategory(input.Category)
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		doc.UploadedBy = &userID
	}

	if err := s.blobs.Put(ctx, doc.StorageKey, contentType, body, input.Size); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	var created *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.documents.Create(txCtx, doc)
		if createErr != nil {
			return fmt.Errorf("create document: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"title":    map[string]any{"new": created.Title},
			"fileName": map[string]any{"new": created.FileName},
			"size":     map[string]any{"new": created.Size},
		})
	})
	if err != nil {
		s.removeBlob(ctx, doc.StorageKey)
		if input.CustomerID != nil && errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("customerId", "Customer not found")
		}
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "document uploaded",
		slog.String("document_id", created.ID.String()),
		slog.String("content_type", created.ContentType),
		slog.Int64("size", created.Size),
	)

	return created, nil
}

// Download returns document metadata and a reader over its content. The
// caller must close the reader.
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get document: %w", err)
	}
	rc, err := s.blobs.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open document content: %w", err)
	}
	return doc, rc, nil
}

// UpdateDocument changes document metadata.
func (s *Service) UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*domain.Document, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Document
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.documents.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}
		next := *old
		apply(&next, input)

		updated, err = s.documents.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update document: %w", err)
		}

		changes := buildChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.logAudit(txCtx, updated.ID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "document updated", slog.String("document_id", updated.ID.String()))

	return updated, nil
}

// DeleteDocument removes the metadata and then the stored content. A blob
// that cannot be removed is logged and left behind.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	var key string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		doc, err := s.documents.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}
		key = doc.StorageKey
		if err := s.documents.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{
			"title": map[string]any{"old": doc.Title},
		})
	})
	if err != nil {
		return err
	}

	s.removeBlob(ctx, key)
	s.invalidate(ctx)
	s.log.InfoContext(ctx, "document deleted", slog.String("document_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *Service) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "document blob cleanup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func apply(d *domain.Document, in UpdateDocumentInput) {
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Category != nil && *in.Category != "" {
		d.Category = domain.DocumentCategory(*in.Category)
	}
	if in.Tags != nil {
		d.Tags = in.Tags
	}
	if in.CustomerID != nil {
		d.CustomerID = in.CustomerID
	}
	d.UpdatedAt = time.Now().UTC()
}

func buildChanges(old, updated *domain.Document) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("title", old.Title, updated.Title)
	diff("description", old.Description, updated.Description)
	diff("category", string(old.Category), string(updated.Category))
	if !slices.Equal(old.Tags, updated.Tags) {
		changes["tags"] = map[string]any{"old": old.Tags, "new": updated.Tags}
	}
	return changes
}

// Package document implements document uploads, metadata and downloads.
// File content lives in a blob store; metadata lives in PostgreSQL.
package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error)
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type cache interface {
	Delete(ctx context.Context, keys ...string) error
}

// Service provides document operations.
type Service struct {
	documents documentRepo
	blobs     blobStore
	audit     auditLogger
	tx        txManager
	cache     cache
	maxSize   int64
	log       *slog.Logger
}

// NewService creates a new document service. Uploads larger than maxSize
// bytes are rejected.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	blobs blobStore,
	audit auditLogger,
	tx txManager,
	cache cache,
	maxSize int64,
) *Service {
	return &Service{
		documents: documents,
		blobs:     blobs,
		audit:     audit,
		tx:        tx,
		cache:     cache,
		maxSize:   maxSize,
		log:       log.With("service", "document"),
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, domain.ReportCacheKeys...); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}

func (s *Service) logAudit(ctx context.Context, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	record := domain.AuditRecord{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeDocument,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
		CreatedAt:  time.Now().UTC(),
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		record.UserID = &userID
	}
	if err := s.audit.Log(ctx, record); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

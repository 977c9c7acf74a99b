// Package employee implements staff records.
package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Employee], error)
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

const duplicateEmailMessage = "Employee with this email already exists"

// Service provides employee operations.
type Service struct {
	employees employeeRepo
	audit     auditLogger
	tx        txManager
	cache     cache
	log       *slog.Logger
}

// NewService creates a new employee service.
func NewService(log *slog.Logger, employees employeeRepo, audit auditLogger, tx txManager, cache cache) *Service {
	return &Service{
		employees: employees,
		audit:     audit,
		tx:        tx,
		cache:     cache,
		log:       log.With("service", "employee"),
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
		EntityType: domain.EntityTypeEmployee,
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

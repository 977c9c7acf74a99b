// Package appointment implements appointment scheduling CRUD.
package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

type appointmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
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

// Service provides appointment operations.
type Service struct {
	appointments appointmentRepo
	audit        auditLogger
	tx           txManager
	cache        cache
	log          *slog.Logger
}

// NewService creates a new appointment service.
func NewService(log *slog.Logger, appointments appointmentRepo, audit auditLogger, tx txManager, cache cache) *Service {
	return &Service{
		appointments: appointments,
		audit:        audit,
		tx:           tx,
		cache:        cache,
		log:          log.With("service", "appointment"),
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
		EntityType: domain.EntityTypeAppointment,
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

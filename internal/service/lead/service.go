// Package lead implements the lead workflow: CRUD, the status machine,
// conversion into customers and funnel statistics.
package lead

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
)

type leadRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Lead], error)
	ListByStatus(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error)
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Summary(ctx context.Context) ([]domain.LeadStatusSummary, error)
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, t time.Time) (int, error)
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepo interface {
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RecentWindow is how far back the stats endpoint counts "recent" leads.
const RecentWindow = 30 * 24 * time.Hour

// HistoryLimit caps the number of audit records returned for one lead.
const HistoryLimit = 100

const duplicateEmailMessage = "Lead with this email already exists"

// Service provides lead operations.
type Service struct {
	leads     leadRepo
	customers customerRepo
	audit     auditLogger
	tx        txManager
	cache     cache
	policy    domain.TransitionPolicy
	mode      string
	cacheTTL  time.Duration
	log       *slog.Logger
}

// NewService creates a new lead service.
func NewService(
	log *slog.Logger,
	leads leadRepo,
	customers customerRepo,
	audit auditLogger,
	tx txManager,
	cache cache,
	leadsCfg config.LeadsConfig,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		leads:     leads,
		customers: customers,
		audit:     audit,
		tx:        tx,
		cache:     cache,
		policy:    domain.PolicyByName(leadsCfg.TransitionPolicy),
		mode:      leadsCfg.ConversionMode,
		cacheTTL:  cacheTTL,
		log:       log.With("service", "lead"),
	}
}

// invalidate drops cached aggregates that depend on leads. Failures are logged.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, append([]string{domain.CacheKeyLeadStats}, domain.ReportCacheKeys...)...); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}

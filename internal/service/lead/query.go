package lead

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// GetLead returns a lead by id.
func (s *Service) GetLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// ListLeads returns one page of leads.
func (s *Service) ListLeads(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Lead], error) {
	if f.Status != "" && f.Status != domain.FilterAll && !domain.LeadStatus(f.Status).IsValid() {
		return domain.Page[domain.Lead]{}, domain.NewValidationError("status", "Invalid lead status")
	}
	return s.leads.List(ctx, f)
}

// LeadsByStatus returns every lead with exactly status.
func (s *Service) LeadsByStatus(ctx context.Context, status string) ([]domain.Lead, error) {
	st := domain.LeadStatus(status)
	if !st.IsValid() {
		return nil, domain.NewValidationError("status", "Invalid lead status")
	}
	return s.leads.ListByStatus(ctx, st)
}

// Stats returns the funnel summary. Results are cached for the configured TTL.
func (s *Service) Stats(ctx context.Context) (*domain.LeadStats, error) {
	var cached domain.LeadStats
	if hit, err := s.cache.GetJSON(ctx, domain.CacheKeyLeadStats, &cached); err != nil {
		s.log.WarnContext(ctx, "lead stats cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	summary, err := s.leads.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("lead summary: %w", err)
	}
	total, err := s.leads.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	recent, err := s.leads.CountSince(ctx, time.Now().UTC().Add(-RecentWindow))
	if err != nil {
		return nil, fmt.Errorf("count recent leads: %w", err)
	}

	stats := &domain.LeadStats{TotalLeads: total, RecentLeads: recent, StatusBreakdown: summary}
	if err := s.cache.SetJSON(ctx, domain.CacheKeyLeadStats, stats, s.cacheTTL); err != nil {
		s.log.WarnContext(ctx, "lead stats cache write failed", slog.String("error", err.Error()))
	}
	return stats, nil
}

// History returns the audit trail of a lead, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	if _, err := s.leads.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	records, err := s.audit.ListByEntity(ctx, domain.EntityTypeLead, id, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("lead history: %w", err)
	}
	return records, nil
}

// DeleteLead removes a lead permanently.
func (s *Service) DeleteLead(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.leads.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete lead: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "lead deleted", slog.String("lead_id", id.String()))
	return nil
}

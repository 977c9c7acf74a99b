package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// UpdateLead applies a partial update. A status change goes through the
// transition policy and stamps lastContactDate when entering contacted.
func (s *Service) UpdateLead(ctx context.Context, input UpdateLeadInput) (*domain.Lead, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Email != nil {
		taken, err := s.leads.EmailTaken(ctx, *input.Email, input.ID)
		if err != nil {
			return nil, fmt.Errorf("check lead email: %w", err)
		}
		if taken {
			return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
		}
	}

	var updated *domain.Lead
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.leads.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get lead: %w", err)
		}
		next := *old
		if err := s.apply(&next, input); err != nil {
			return err
		}

		updated, err = s.leads.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update lead: %w", err)
		}

		changes := buildLeadChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		action := domain.AuditActionUpdate
		if old.Status != updated.Status {
			action = domain.AuditActionStatusChange
		}
		return s.logAudit(txCtx, updated.ID, action, changes)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
		}
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "lead updated", slog.String("lead_id", updated.ID.String()))

	return updated, nil
}

// UpdateStatus moves a lead to status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Lead, error) {
	if status == "" {
		return nil, domain.NewValidationError("status", "Status is required")
	}
	return s.UpdateLead(ctx, UpdateLeadInput{ID: id, Status: &status})
}

func (s *Service) apply(l *domain.Lead, in UpdateLeadInput) error {
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Email != nil {
		l.Email = *in.Email
	}
	if in.Phone != nil {
		l.Phone = *in.Phone
	}
	if in.Company != nil {
		l.Company = *in.Company
	}
	if in.Source != nil && *in.Source != "" {
		l.Source = domain.LeadSource(*in.Source)
	}
	if in.EstimatedValue != nil {
		l.EstimatedValue = *in.EstimatedValue
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
	if in.AssignedTo != nil {
		l.AssignedTo = in.AssignedTo
	}
	if in.NextFollowUp != nil {
		l.NextFollowUp = in.NextFollowUp
	}

	now := time.Now().UTC()
	if in.Status != nil && *in.Status != "" {
		to := domain.LeadStatus(*in.Status)
		if err := s.policy.Check(l.Status, to); err != nil {
			return err
		}
		l.SetStatus(to, now)
	}
	l.UpdatedAt = now
	return nil
}

// buildLeadChanges returns only changed fields for audit.
func buildLeadChanges(old, updated *domain.Lead) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("email", old.Email, updated.Email)
	diff("phone", old.Phone, updated.Phone)
	diff("company", old.Company, updated.Company)
	diff("source", string(old.Source), string(updated.Source))
	diff("status", string(old.Status), string(updated.Status))
	diff("notes", old.Notes, updated.Notes)
	if !old.EstimatedValue.Equal(updated.EstimatedValue) {
		changes["estimatedValue"] = map[string]any{"old": old.EstimatedValue.String(), "new": updated.EstimatedValue.String()}
	}
	return changes
}

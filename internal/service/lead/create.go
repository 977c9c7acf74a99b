package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

// CreateLead validates and stores a new lead. Source defaults to Website,
// status to new and estimated value to zero.
func (s *Service) CreateLead(ctx context.Context, input CreateLeadInput) (*domain.Lead, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.leads.EmailTaken(ctx, input.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check lead email: %w", err)
	}
	if taken {
		return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:             uuid.New(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		Source:         domain.LeadSourceWebsite,
		Status:         domain.LeadStatusNew,
		EstimatedValue: decimal.Zero,
		Notes:          input.Notes,
		AssignedTo:     input.AssignedTo,
		NextFollowUp:   input.NextFollowUp,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.Source != "" {
		lead.Source = domain.LeadSource(input.Source)
	}
	if input.Status != "" {
		lead.Status = domain.LeadStatus(input.Status)
	}
	if lead.Status == domain.LeadStatusContacted {
		lead.LastContactDate = &now
	}
	if input.EstimatedValue != nil {
		lead.EstimatedValue = *input.EstimatedValue
	}

	var created *domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.leads.Create(txCtx, lead)
		if createErr != nil {
			return fmt.Errorf("create lead: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"name":   map[string]any{"new": created.Name},
			"email":  map[string]any{"new": created.Email},
			"status": map[string]any{"new": created.Status},
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewDuplicateError("email", duplicateEmailMessage)
		}
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "lead created",
		slog.String("lead_id", created.ID.String()),
		slog.String("source", created.Source.String()),
	)

	return created, nil
}

// logAudit records a mutation of a lead made by the current user.
func (s *Service) logAudit(ctx context.Context, leadID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	record := domain.AuditRecord{
		ID:         uuid.New(),
		EntityType: domain.EntityTypeLead,
		EntityID:   leadID,
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

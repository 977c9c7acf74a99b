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

// ConvertLead marks a lead as qualified. In create_customer mode it also
// creates a customer from the lead inside the same transaction.
func (s *Service) ConvertLead(ctx context.Context, id uuid.UUID) (*domain.ConversionOutcome, error) {
	var outcome *domain.ConversionOutcome

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lead, err := s.leads.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get lead: %w", err)
		}
		if lead.IsConverted() {
			return fmt.Errorf("lead %s already converted: %w", id, domain.ErrConflict)
		}
		if err := s.policy.Check(lead.Status, domain.LeadStatusQualified); err != nil {
			return err
		}

		prior := lead.Status
		now := time.Now().UTC()
		lead.SetStatus(domain.LeadStatusQualified, now)
		lead.UpdatedAt = now

		outcome = &domain.ConversionOutcome{Kind: domain.ConversionStatusOnly}
		if s.mode != domain.ConversionModeStatusOnly {
			customer, err := s.createCustomer(txCtx, lead, now)
			if err != nil {
				return err
			}
			lead.ConvertedCustomerID = &customer.ID
			outcome = &domain.ConversionOutcome{Kind: domain.ConversionConverted, CustomerID: &customer.ID}
		}

		saved, err := s.leads.Update(txCtx, lead)
		if err != nil {
			return fmt.Errorf("update lead: %w", err)
		}
		outcome.Lead = *saved

		changes := map[string]any{
			"status": map[string]any{"old": string(prior), "new": string(saved.Status)},
			"kind":   string(outcome.Kind),
		}
		if outcome.CustomerID != nil {
			changes["customerId"] = outcome.CustomerID.String()
		}
		return s.logAudit(txCtx, saved.ID, domain.AuditActionConvert, changes)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "lead converted",
		slog.String("lead_id", id.String()),
		slog.String("kind", string(outcome.Kind)),
	)

	return outcome, nil
}

func (s *Service) createCustomer(ctx context.Context, lead *domain.Lead, now time.Time) (*domain.Customer, error) {
	taken, err := s.customers.EmailTaken(ctx, lead.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check customer email: %w", err)
	}
	if taken {
		return nil, domain.NewDuplicateError("email", "Customer with this email already exists")
	}

	first, last := domain.SplitName(lead.Name)
	customer, err := s.customers.Create(ctx, &domain.Customer{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Company:   lead.Company,
		Status:    domain.CustomerStatusActive,
		Notes:     lead.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewDuplicateError("email", "Customer with this email already exists")
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

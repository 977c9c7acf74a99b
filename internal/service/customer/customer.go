package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// GetCustomer returns a customer by id.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListCustomers returns one page of customers.
func (s *Service) ListCustomers(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Customer], error) {
	if f.Status != "" && f.Status != domain.FilterAll && !domain.CustomerStatus(f.Status).IsValid() {
		return domain.Page[domain.Customer]{}, domain.NewValidationError("status", "Invalid customer status")
	}
	return s.customers.List(ctx, f)
}

// CreateCustomer validates and stores a new customer. Status defaults to active.
func (s *Service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Address:   input.Address,
		Status:    domain.CustomerStatusActive,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Status != "" {
		customer.Status = domain.CustomerStatus(input.Status)
	}

	var created *domain.Customer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.customers.Create(txCtx, customer)
		if createErr != nil {
			return fmt.Errorf("create customer: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"name":  map[string]any{"new": created.DisplayName()},
			"email": map[string]any{"new": created.Email},
		})
	})
	if err != nil {
		return nil, duplicateOr(err)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "customer created", slog.String("customer_id", created.ID.String()))

	return created, nil
}

// UpdateCustomer applies a partial update.
func (s *Service) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Email != nil {
		if err := s.checkEmail(ctx, *input.Email, input.ID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Customer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.customers.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}
		next := *old
		apply(&next, input)

		updated, err = s.customers.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}

		changes := buildChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.logAudit(txCtx, updated.ID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, duplicateOr(err)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "customer updated", slog.String("customer_id", updated.ID.String()))

	return updated, nil
}

// DeleteCustomer removes a customer permanently.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customers.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "customer deleted", slog.String("customer_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *Service) checkEmail(ctx context.Context, email string, excludeID uuid.UUID) error {
	taken, err := s.customers.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check customer email: %w", err)
	}
	if taken {
		return domain.NewDuplicateError("email", duplicateEmailMessage)
	}
	return nil
}

// duplicateOr turns a unique violation that slipped past the pre-check into
// the same error the pre-check returns.
func duplicateOr(err error) error {
	var dup *domain.DuplicateError
	if errors.Is(err, domain.ErrAlreadyExists) && !errors.As(err, &dup) {
		return domain.NewDuplicateError("email", duplicateEmailMessage)
	}
	return err
}

func apply(c *domain.Customer, in UpdateCustomerInput) {
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Company != nil {
		c.Company = *in.Company
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Status != nil && *in.Status != "" {
		c.Status = domain.CustomerStatus(*in.Status)
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	c.UpdatedAt = time.Now().UTC()
}

func buildChanges(old, updated *domain.Customer) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("firstName", old.FirstName, updated.FirstName)
	diff("lastName", old.LastName, updated.LastName)
	diff("email", old.Email, updated.Email)
	diff("phone", old.Phone, updated.Phone)
	diff("company", old.Company, updated.Company)
	diff("address", old.Address.Line(), updated.Address.Line())
	diff("status", string(old.Status), string(updated.Status))
	diff("notes", old.Notes, updated.Notes)
	return changes
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// GetEmployee returns an employee by id.
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns one page of employees. The category filter matches
// the department.
func (s *Service) ListEmployees(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Employee], error) {
	var errs []domain.FieldError
	if f.Status != "" && f.Status != domain.FilterAll && !domain.EmployeeStatus(f.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid employee status"})
	}
	if f.Category != "" && f.Category != domain.FilterAll && !domain.Department(f.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "Invalid department"})
	}
	if len(errs) > 0 {
		return domain.Page[domain.Employee]{}, domain.NewValidationErrors(errs)
	}
	return s.employees.List(ctx, f)
}

// CreateEmployee validates and stores a new employee. Status defaults to active.
func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		ID:         uuid.New(),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Position:   input.Position,
		Department: domain.Department(input.Department),
		Status:     domain.EmployeeStatusActive,
		HireDate:   input.HireDate,
		Salary:     decimal.Zero,
		Skills:     input.Skills,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.Status != "" {
		emp.Status = domain.EmployeeStatus(input.Status)
	}
	if input.Salary != nil {
		emp.Salary = *input.Salary
	}

	var created *domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.employees.Create(txCtx, emp)
		if createErr != nil {
			return fmt.Errorf("create employee: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"name":       map[string]any{"new": created.FullName()},
			"department": map[string]any{"new": created.Department},
		})
	})
	if err != nil {
		return nil, duplicateOr(err)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID.String()),
		slog.String("department", created.Department.String()),
	)

	return created, nil
}

// UpdateEmployee applies a partial update.
func (s *Service) UpdateEmployee(ctx context.Context, input UpdateEmployeeInput) (*domain.Employee, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Email != nil {
		if err := s.checkEmail(ctx, *input.Email, input.ID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Employee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.employees.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}
		next := *old
		apply(&next, input)

		updated, err = s.employees.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update employee: %w", err)
		}

		changes := buildChanges(old, updated)
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
		return nil, duplicateOr(err)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "employee updated", slog.String("employee_id", updated.ID.String()))

	return updated, nil
}

// DeleteEmployee removes an employee permanently. Assets assigned to the
// employee become unassigned.
func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.employees.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "employee deleted", slog.String("employee_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *Service) checkEmail(ctx context.Context, email string, excludeID uuid.UUID) error {
	taken, err := s.employees.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check employee email: %w", err)
	}
	if taken {
		return domain.NewDuplicateError("email", duplicateEmailMessage)
	}
	return nil
}

func duplicateOr(err error) error {
	var dup *domain.DuplicateError
	if errors.Is(err, domain.ErrAlreadyExists) && !errors.As(err, &dup) {
		return domain.NewDuplicateError("email", duplicateEmailMessage)
	}
	return err
}

func apply(e *domain.Employee, in UpdateEmployeeInput) {
	if in.FirstName != nil {
		e.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		e.LastName = *in.LastName
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Department != nil && *in.Department != "" {
		e.Department = domain.Department(*in.Department)
	}
	if in.Status != nil && *in.Status != "" {
		e.Status = domain.EmployeeStatus(*in.Status)
	}
	if in.HireDate != nil {
		e.HireDate = in.HireDate
	}
	if in.Salary != nil {
		e.Salary = *in.Salary
	}
	if in.Skills != nil {
		e.Skills = in.Skills
	}
	e.UpdatedAt = time.Now().UTC()
}

func buildChanges(old, updated *domain.Employee) map[string]any {
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
	diff("position", old.Position, updated.Position)
	diff("department", string(old.Department), string(updated.Department))
	diff("status", string(old.Status), string(updated.Status))
	if !old.Salary.Equal(updated.Salary) {
		changes["salary"] = map[string]any{"old": old.Salary.String(), "new": updated.Salary.String()}
	}
	if !slices.Equal(old.Skills, updated.Skills) {
		changes["skills"] = map[string]any{"old": old.Skills, "new": updated.Skills}
	}
	return changes
}

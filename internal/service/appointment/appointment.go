package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// GetAppointment returns an appointment by id with its customer name populated.
func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// ListAppointments returns one page of appointments, soonest first by default.
func (s *Service) ListAppointments(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error) {
	if f.Status != "" && f.Status != domain.FilterAll && !domain.AppointmentStatus(f.Status).IsValid() {
		return domain.Page[domain.Appointment]{}, domain.NewValidationError("status", "Invalid appointment status")
	}
	return s.appointments.List(ctx, f)
}

// CreateAppointment validates and stores a new appointment. Status defaults
// to scheduled.
func (s *Service) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		CustomerID:  input.CustomerID,
		Date:        *input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Status:      domain.AppointmentStatusScheduled,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Status != "" {
		appt.Status = domain.AppointmentStatus(input.Status)
	}

	var created *domain.Appointment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.appointments.Create(txCtx, appt)
		if createErr != nil {
			return fmt.Errorf("create appointment: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"title": map[string]any{"new": created.Title},
			"date":  map[string]any{"new": created.Date.Format(time.DateOnly)},
		})
	})
	if err != nil {
		return nil, customerRefOr(err, input.CustomerID)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "appointment created", slog.String("appointment_id", created.ID.String()))

	return created, nil
}

// UpdateAppointment applies a partial update. The resulting start and end
// times are validated together.
func (s *Service) UpdateAppointment(ctx context.Context, input UpdateAppointmentInput) (*domain.Appointment, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Appointment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.appointments.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get appointment: %w", err)
		}
		next := *old
		apply(&next, input)
		if errs := validateTimes(next.StartTime, next.EndTime, true); len(errs) > 0 {
			return domain.NewValidationErrors(errs)
		}

		updated, err = s.appointments.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
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
		return nil, err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "appointment updated", slog.String("appointment_id", updated.ID.String()))

	return updated, nil
}

// DeleteAppointment removes an appointment permanently.
func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.appointments.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "appointment deleted", slog.String("appointment_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// customerRefOr reports a missing referenced customer as a field error.
// Insert fails with ErrNotFound only on a foreign key violation.
func customerRefOr(err error, customerID *uuid.UUID) error {
	if customerID != nil && errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("customerId", "Customer not found")
	}
	return err
}

func apply(a *domain.Appointment, in UpdateAppointmentInput) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.CustomerID != nil {
		a.CustomerID = in.CustomerID
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.StartTime != nil {
		a.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		a.EndTime = *in.EndTime
	}
	if in.Location != nil {
		a.Location = *in.Location
	}
	if in.Status != nil && *in.Status != "" {
		a.Status = domain.AppointmentStatus(*in.Status)
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
	a.UpdatedAt = time.Now().UTC()
}

func buildChanges(old, updated *domain.Appointment) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("title", old.Title, updated.Title)
	diff("description", old.Description, updated.Description)
	diff("date", old.Date.Format(time.DateOnly), updated.Date.Format(time.DateOnly))
	diff("startTime", old.StartTime, updated.StartTime)
	diff("endTime", old.EndTime, updated.EndTime)
	diff("location", old.Location, updated.Location)
	diff("status", string(old.Status), string(updated.Status))
	diff("notes", old.Notes, updated.Notes)
	return changes
}

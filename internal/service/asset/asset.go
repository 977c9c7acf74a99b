package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// GetAsset returns an asset by id with the assignee name populated.
func (s *Service) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	a, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// ListAssets returns one page of assets.
func (s *Service) ListAssets(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Asset], error) {
	var errs []domain.FieldError
	if f.Status != "" && f.Status != domain.FilterAll && !domain.AssetStatus(f.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid asset status"})
	}
	if f.Category != "" && f.Category != domain.FilterAll && !domain.AssetCategory(f.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "Invalid asset category"})
	}
	if len(errs) > 0 {
		return domain.Page[domain.Asset]{}, domain.NewValidationErrors(errs)
	}
	return s.assets.List(ctx, f)
}

// CreateAsset validates and stores a new asset. Status defaults to available.
func (s *Service) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var serial *string
	if input.SerialNumber != "" {
		if err := s.checkSerial(ctx, input.SerialNumber, uuid.Nil); err != nil {
			return nil, err
		}
		serial = &input.SerialNumber
	}

	now := time.Now().UTC()
	asset := &domain.Asset{
		ID:           uuid.New(),
		Name:         input.Name,
		Category:     domain.AssetCategory(input.Category),
		SerialNumber: serial,
		Status:       domain.AssetStatusAvailable,
		Location:     input.Location,
		PurchaseDate: input.PurchaseDate,
		Value:        decimal.Zero,
		AssignedTo:   input.AssignedTo,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Status != "" {
		asset.Status = domain.AssetStatus(input.Status)
	}
	if input.Value != nil {
		asset.Value = *input.Value
	}

	var created *domain.Asset
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.assets.Create(txCtx, asset)
		if createErr != nil {
			return fmt.Errorf("create asset: %w", createErr)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"name":     map[string]any{"new": created.Name},
			"category": map[string]any{"new": created.Category},
		})
	})
	if err != nil {
		return nil, mapWriteError(err, input.AssignedTo)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "asset created",
		slog.String("asset_id", created.ID.String()),
		slog.String("category", created.Category.String()),
	)

	return created, nil
}

// UpdateAsset applies a partial update.
func (s *Service) UpdateAsset(ctx context.Context, input UpdateAssetInput) (*domain.Asset, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.SerialNumber != nil && *input.SerialNumber != "" {
		if err := s.checkSerial(ctx, *input.SerialNumber, input.ID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Asset
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.assets.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get asset: %w", err)
		}
		next := *old
		apply(&next, input)

		updated, err = s.assets.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update asset: %w", err)
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
		return nil, mapWriteError(err, nil)
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "asset updated", slog.String("asset_id", updated.ID.String()))

	return updated, nil
}

// DeleteAsset removes an asset permanently.
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.assets.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete asset: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, map[string]any{})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.InfoContext(ctx, "asset deleted", slog.String("asset_id", id.String()))
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *Service) checkSerial(ctx context.Context, serial string, excludeID uuid.UUID) error {
	taken, err := s.assets.SerialTaken(ctx, serial, excludeID)
	if err != nil {
		return fmt.Errorf("check serial number: %w", err)
	}
	if taken {
		return domain.NewDuplicateError("serialNumber", duplicateSerialMessage)
	}
	return nil
}

func mapWriteError(err error, assignedTo *uuid.UUID) error {
	var dup *domain.DuplicateError
	switch {
	case errors.As(err, &dup):
		return err
	case errors.Is(err, domain.ErrAlreadyExists):
		return domain.NewDuplicateError("serialNumber", duplicateSerialMessage)
	case assignedTo != nil && errors.Is(err, domain.ErrNotFound):
		return domain.NewValidationError("assignedTo", "Employee not found")
	}
	return err
}

func apply(a *domain.Asset, in UpdateAssetInput) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Category != nil && *in.Category != "" {
		a.Category = domain.AssetCategory(*in.Category)
	}
	if in.SerialNumber != nil {
		if *in.SerialNumber == "" {
			a.SerialNumber = nil
		} else {
			serial := *in.SerialNumber
			a.SerialNumber = &serial
		}
	}
	if in.Status != nil && *in.Status != "" {
		a.Status = domain.AssetStatus(*in.Status)
	}
	if in.Location != nil {
		a.Location = *in.Location
	}
	if in.PurchaseDate != nil {
		a.PurchaseDate = in.PurchaseDate
	}
	if in.Value != nil {
		a.Value = *in.Value
	}
	if in.AssignedTo != nil {
		a.AssignedTo = in.AssignedTo
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
	a.UpdatedAt = time.Now().UTC()
}

func buildChanges(old, updated *domain.Asset) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("category", string(old.Category), string(updated.Category))
	diff("serialNumber", deref(old.SerialNumber), deref(updated.SerialNumber))
	diff("status", string(old.Status), string(updated.Status))
	diff("location", old.Location, updated.Location)
	diff("notes", old.Notes, updated.Notes)
	if !old.Value.Equal(updated.Value) {
		changes["value"] = map[string]any{"old": old.Value.String(), "new": updated.Value.String()}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

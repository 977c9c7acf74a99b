package asset

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// CreateAssetInput holds the parameters for registering an asset.
type CreateAssetInput struct {
	Name         string
	Category     string
	SerialNumber string
	Status       string
	Location     string
	PurchaseDate *time.Time
	Value        *decimal.Decimal
	AssignedTo   *uuid.UUID
	Notes        string
}

func (i *CreateAssetInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	i.SerialNumber = strings.TrimSpace(i.SerialNumber)
	i.Status = strings.TrimSpace(i.Status)
	i.Location = strings.TrimSpace(i.Location)
	i.Notes = strings.TrimSpace(i.Notes)
}

// Validate checks all fields and collects all errors.
func (i CreateAssetInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "Category is required"})
	}
	errs = append(errs, validateOptional(&i.Category, &i.Status, i.Value)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateAssetInput holds a partial update. Nil fields are left unchanged; an
// empty SerialNumber clears the serial.
type UpdateAssetInput struct {
	ID           uuid.UUID
	Name         *string
	Category     *string
	SerialNumber *string
	Status       *string
	Location     *string
	PurchaseDate *time.Time
	Value        *decimal.Decimal
	AssignedTo   *uuid.UUID
	Notes        *string
}

func (i *UpdateAssetInput) normalize() {
	for _, p := range []*string{i.Name, i.Category, i.SerialNumber, i.Status, i.Location, i.Notes} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateAssetInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	errs = append(errs, validateOptional(i.Category, i.Status, i.Value)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateOptional(category, status *string, value *decimal.Decimal) []domain.FieldError {
	var errs []domain.FieldError
	if category != nil && *category != "" && !domain.AssetCategory(*category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "Invalid asset category"})
	}
	if status != nil && *status != "" && !domain.AssetStatus(*status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid asset status"})
	}
	if value != nil && value.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "value", Message: "Value cannot be negative"})
	}
	return errs
}

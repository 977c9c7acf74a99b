package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// CreateLeadInput holds the parameters for creating a lead.
type CreateLeadInput struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Source         string
	Status         string
	EstimatedValue *decimal.Decimal
	Notes          string
	AssignedTo     *uuid.UUID
	NextFollowUp   *time.Time
}

func (i *CreateLeadInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Company = strings.TrimSpace(i.Company)
	i.Source = strings.TrimSpace(i.Source)
	i.Status = strings.TrimSpace(i.Status)
	i.Notes = strings.TrimSpace(i.Notes)
}

// Validate checks all fields and collects all errors.
func (i CreateLeadInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	errs = append(errs, validateEmail(i.Email)...)
	if i.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "Phone is required"})
	}
	if i.Company == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "Company is required"})
	}
	errs = append(errs, validateOptional(&i.Source, &i.Status, i.EstimatedValue, &i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateLeadInput holds a partial update. Nil fields are left unchanged;
// fields outside this set cannot be changed through an update.
type UpdateLeadInput struct {
	ID             uuid.UUID
	Name           *string
	Email          *string
	Phone          *string
	Company        *string
	Source         *string
	Status         *string
	EstimatedValue *decimal.Decimal
	Notes          *string
	AssignedTo     *uuid.UUID
	NextFollowUp   *time.Time
}

func (i *UpdateLeadInput) normalize() {
	for _, p := range []*string{i.Name, i.Phone, i.Company, i.Source, i.Status, i.Notes} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if i.Email != nil {
		*i.Email = domain.NormalizeEmail(*i.Email)
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateLeadInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.Phone != nil && *i.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "Phone is required"})
	}
	if i.Company != nil && *i.Company == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "Company is required"})
	}
	errs = append(errs, validateOptional(i.Source, i.Status, i.EstimatedValue, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "Email is required"}}
	}
	if !domain.IsEmail(email) {
		return []domain.FieldError{{Field: "email", Message: "Please enter a valid email"}}
	}
	return nil
}

func validateOptional(source, status *string, value *decimal.Decimal, notes *string) []domain.FieldError {
	var errs []domain.FieldError
	if source != nil && *source != "" && !domain.LeadSource(*source).IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "Invalid lead source"})
	}
	if status != nil && *status != "" && !domain.LeadStatus(*status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid lead status"})
	}
	if value != nil && value.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "estimatedValue", Message: "Estimated value cannot be negative"})
	}
	if notes != nil && len([]rune(*notes)) > domain.MaxLeadNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "Notes cannot exceed 1000 characters"})
	}
	return errs
}

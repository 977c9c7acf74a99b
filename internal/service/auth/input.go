package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/buildline/crm-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
	maxNameLength     = 100
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	} else if !domain.IsEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please enter a valid email"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is too long"})
	}

	switch {
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("database.connect_attempts must be >= 1 (got %d)", c.Database.ConnectAttempts)
	}
	if err := c.Auth.validate(c.App); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Leads.validate(); err != nil {
		return fmt.Errorf("leads: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Reports.MaxRows <= 0 {
		return fmt.Errorf("reports.max_rows must be > 0 (got %d)", c.Reports.MaxRows)
	}
	return nil
}

func (a *AuthConfig) validate(app AppConfig) error {
	switch a.Mode {
	case AuthModeJWT:
		if len(a.JWTSecret) < 32 {
			return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
		}
	case AuthModeStatic:
		if app.IsProduction() {
			return fmt.Errorf("static mode is not allowed when app.env=production")
		}
		if _, err := uuid.Parse(a.StaticUserID); err != nil {
			return fmt.Errorf("static_user_id: %w", err)
		}
		if !domain.UserRole(a.StaticRole).IsValid() {
			return fmt.Errorf("static_role %q is not a valid role", a.StaticRole)
		}
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)", AuthModeJWT, AuthModeStatic, a.Mode)
	}
	return nil
}

func (l *LeadsConfig) validate() error {
	switch l.TransitionPolicy {
	case domain.TransitionPolicyPermissive, domain.TransitionPolicyStrict:
	default:
		return fmt.Errorf("transition_policy must be %q or %q (got %q)",
			domain.TransitionPolicyPermissive, domain.TransitionPolicyStrict, l.TransitionPolicy)
	}
	switch l.ConversionMode {
	case domain.ConversionModeCreateCustomer, domain.ConversionModeStatusOnly:
	default:
		return fmt.Errorf("conversion_mode must be %q or %q (got %q)",
			domain.ConversionModeCreateCustomer, domain.ConversionModeStatusOnly, l.ConversionMode)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageDriverLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
	case StorageDriverS3:
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", StorageDriverLocal, StorageDriverS3, s.Driver)
	}
	if s.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be > 0 (got %d)", s.MaxUploadSize)
	}
	return nil
}

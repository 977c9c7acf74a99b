package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// CreateAppointmentInput holds the parameters for scheduling an appointment.
type CreateAppointmentInput struct {
	Title       string
	Description string
	CustomerID  *uuid.UUID
	Date        *time.Time
	StartTime   string
	EndTime     string
	Location    string
	Status      string
	Notes       string
}

func (i *CreateAppointmentInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.StartTime = strings.TrimSpace(i.StartTime)
	i.EndTime = strings.TrimSpace(i.EndTime)
	i.Location = strings.TrimSpace(i.Location)
	i.Status = strings.TrimSpace(i.Status)
	i.Notes = strings.TrimSpace(i.Notes)
}

// Validate checks all fields and collects all errors.
func (i CreateAppointmentInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	if i.Date == nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "Date is required"})
	}
	errs = append(errs, validateTimes(i.StartTime, i.EndTime, true)...)
	errs = append(errs, validateStatus(i.Status)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateAppointmentInput holds a partial update. Nil fields are left unchanged.
type UpdateAppointmentInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	CustomerID  *uuid.UUID
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Location    *string
	Status      *string
	Notes       *string
}

func (i *UpdateAppointmentInput) normalize() {
	for _, p := range []*string{i.Title, i.Description, i.StartTime, i.EndTime, i.Location, i.Status, i.Notes} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateAppointmentInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	if i.StartTime != nil && !domain.IsClockTime(*i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "Start time must be in HH:MM format"})
	}
	if i.EndTime != nil && !domain.IsClockTime(*i.EndTime) {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "End time must be in HH:MM format"})
	}
	if i.Status != nil {
		errs = append(errs, validateStatus(*i.Status)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateTimes checks HH:MM format and that the end does not precede the
// start. HH:MM strings compare correctly as text.
func validateTimes(start, end string, required bool) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case start == "" && required:
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "Start time is required"})
	case start != "" && !domain.IsClockTime(start):
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "Start time must be in HH:MM format"})
	}
	switch {
	case end == "" && required:
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "End time is required"})
	case end != "" && !domain.IsClockTime(end):
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "End time must be in HH:MM format"})
	}
	if len(errs) == 0 && start != "" && end != "" && end < start {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "End time must be after start time"})
	}
	return errs
}

func validateStatus(status string) []domain.FieldError {
	if status != "" && !domain.AppointmentStatus(status).IsValid() {
		return []domain.FieldError{{Field: "status", Message: "Invalid appointment status"}}
	}
	return nil
}

package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/buildline/crm-backend/internal/domain"
)

// UploadInput describes an uploaded file and its metadata. Title defaults to
// the file name and category to other.
type UploadInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	CustomerID  *uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (i *UploadInput) normalize() {
	i.FileName = filepath.Base(strings.TrimSpace(i.FileName))
	if i.FileName == "." || i.FileName == "/" {
		i.FileName = ""
	}
	i.Title = strings.TrimSpace(i.Title)
	if i.Title == "" {
		i.Title = i.FileName
	}
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)
	i.Tags = cleanTags(i.Tags)
}

func (i UploadInput) validate(maxSize int64) error {
	var errs []domain.FieldError

	if i.Body == nil || i.Size <= 0 || i.FileName == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "File is required"})
	} else if maxSize > 0 && i.Size > maxSize {
		errs = append(errs, domain.FieldError{
			Field:   "file",
			Message: fmt.Sprintf("File exceeds the maximum size of %d MB", maxSize>>20),
		})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	errs = append(errs, validateCategory(i.Category)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDocumentInput changes document metadata. The file itself is immutable.
type UpdateDocumentInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Category    *string
	Tags        []string
	CustomerID  *uuid.UUID
}

func (i *UpdateDocumentInput) normalize() {
	for _, p := range []*string{i.Title, i.Description, i.Category} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if i.Tags != nil {
		i.Tags = cleanTags(i.Tags)
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateDocumentInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	if i.Category != nil {
		errs = append(errs, validateCategory(*i.Category)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateCategory(category string) []domain.FieldError {
	if category != "" && !domain.DocumentCategory(category).IsValid() {
		return []domain.FieldError{{Field: "category", Message: "Invalid document category"}}
	}
	return nil
}

// cleanTags lowercases and trims tags and drops blanks and duplicates.
func cleanTags(tags []string) []string {
	cleaned := lo.Map(tags, func(t string, _ int) string { return strings.ToLower(strings.TrimSpace(t)) })
	return lo.Uniq(lo.Compact(cleaned))
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is metadata for an uploaded file. The content lives in blob storage
// under StorageKey.
type Document struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     DocumentCategory `json:"category"`
	Tags         []string         `json:"tags"`
	FileName     string           `json:"fileName"`
	ContentType  string           `json:"contentType"`
	Size         int64            `json:"size"`
	StorageKey   string           `json:"-"`
	UploadedBy   *uuid.UUID       `json:"uploadedBy,omitempty"`
	CustomerID   *uuid.UUID       `json:"customerId,omitempty"`
	CustomerName string           `json:"customerName,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

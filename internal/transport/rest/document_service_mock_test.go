package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/document"
)

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	GetDocumentFunc    func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListDocumentsFunc  func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error)
	UploadFunc         func(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	DownloadFunc       func(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error)
	UpdateDocumentFunc func(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error)
	DeleteDocumentFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetDocument []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDocuments []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		Upload []struct {
			Ctx   context.Context
			Input document.UploadInput
		}
		Download []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateDocument []struct {
			Ctx   context.Context
			Input document.UpdateDocumentInput
		}
		DeleteDocument []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetDocument    sync.RWMutex
	lockListDocuments  sync.RWMutex
	lockUpload         sync.RWMutex
	lockDownload       sync.RWMutex
	lockUpdateDocument sync.RWMutex
	lockDeleteDocument sync.RWMutex
}

func (mock *documentServiceMock) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetDocumentFunc == nil {
		panic("documentServiceMock.GetDocumentFunc: method is nil but documentService.GetDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetDocument.Lock()
	mock.calls.GetDocument = append(mock.calls.GetDocument, callInfo)
	mock.lockGetDocument.Unlock()
	return mock.GetDocumentFunc(ctx, id)
}

func (mock *documentServiceMock) GetDocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDocument.RLock()
	calls := mock.calls.GetDocument
	mock.lockGetDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) ListDocuments(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error) {
	if mock.ListDocumentsFunc == nil {
		panic("documentServiceMock.ListDocumentsFunc: method is nil but documentService.ListDocuments was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListDocuments.Lock()
	mock.calls.ListDocuments = append(mock.calls.ListDocuments, callInfo)
	mock.lockListDocuments.Unlock()
	return mock.ListDocumentsFunc(ctx, f)
}

func (mock *documentServiceMock) ListDocumentsCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	mock.lockListDocuments.RLock()
	calls := mock.calls.ListDocuments
	mock.lockListDocuments.RUnlock()
	return calls
}

func (mock *documentServiceMock) Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error) {
	if mock.UploadFunc == nil {
		panic("documentServiceMock.UploadFunc: method is nil but documentService.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UploadInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *documentServiceMock) UploadCalls() []struct {
	Ctx   context.Context
	Input document.UploadInput
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *documentServiceMock) Download(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error) {
	if mock.DownloadFunc == nil {
		panic("documentServiceMock.DownloadFunc: method is nil but documentService.Download was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDownload.Lock()
	mock.calls.Download = append(mock.calls.Download, callInfo)
	mock.lockDownload.Unlock()
	return mock.DownloadFunc(ctx, id)
}

func (mock *documentServiceMock) DownloadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDownload.RLock()
	calls := mock.calls.Download
	mock.lockDownload.RUnlock()
	return calls
}

func (mock *documentServiceMock) UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error) {
	if mock.UpdateDocumentFunc == nil {
		panic("documentServiceMock.UpdateDocumentFunc: method is nil but documentService.UpdateDocument was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UpdateDocumentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateDocument.Lock()
	mock.calls.UpdateDocument = append(mock.calls.UpdateDocument, callInfo)
	mock.lockUpdateDocument.Unlock()
	return mock.UpdateDocumentFunc(ctx, input)
}

func (mock *documentServiceMock) UpdateDocumentCalls() []struct {
	Ctx   context.Context
	Input document.UpdateDocumentInput
} {
	mock.lockUpdateDocument.RLock()
	calls := mock.calls.UpdateDocument
	mock.lockUpdateDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteDocumentFunc == nil {
		panic("documentServiceMock.DeleteDocumentFunc: method is nil but documentService.DeleteDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteDocument.Lock()
	mock.calls.DeleteDocument = append(mock.calls.DeleteDocument, callInfo)
	mock.lockDeleteDocument.Unlock()
	return mock.DeleteDocumentFunc(ctx, id)
}

func (mock *documentServiceMock) DeleteDocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteDocument.RLock()
	calls := mock.calls.DeleteDocument
	mock.lockDeleteDocument.RUnlock()
	return calls
}

package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/workflow"
)

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	CreateDocumentFunc  func(ctx context.Context, input workflow.CreateDocumentInput) (*domain.Document, error)
	SubmitRequestFunc   func(ctx context.Context, input workflow.SubmitRequestInput) (*domain.PermissionRequest, error)
	ListDocumentsFunc   func(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)
	GetDocumentFunc     func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	DocumentHistoryFunc func(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error)

	calls struct {
		CreateDocument []struct {
			Ctx   context.Context
			Input workflow.CreateDocumentInput
		}
		SubmitRequest []struct {
			Ctx   context.Context
			Input workflow.SubmitRequestInput
		}
		ListDocuments []struct {
			Ctx    context.Context
			Filter domain.DocumentFilter
		}
		GetDocument []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DocumentHistory []struct {
			Ctx        context.Context
			DocumentID uuid.UUID
		}
	}
	lockCreateDocument  sync.RWMutex
	lockSubmitRequest   sync.RWMutex
	lockListDocuments   sync.RWMutex
	lockGetDocument     sync.RWMutex
	lockDocumentHistory sync.RWMutex
}

func (mock *documentServiceMock) CreateDocument(ctx context.Context, input workflow.CreateDocumentInput) (*domain.Document, error) {
	if mock.CreateDocumentFunc == nil {
		panic("documentServiceMock.CreateDocumentFunc: method is nil but documentService.CreateDocument was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.CreateDocumentInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDocument.Lock()
	mock.calls.CreateDocument = append(mock.calls.CreateDocument, callInfo)
	mock.lockCreateDocument.Unlock()
	return mock.CreateDocumentFunc(ctx, input)
}

func (mock *documentServiceMock) CreateDocumentCalls() []struct {
	Ctx   context.Context
	Input workflow.CreateDocumentInput
} {
	mock.lockCreateDocument.RLock()
	calls := mock.calls.CreateDocument
	mock.lockCreateDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) SubmitRequest(ctx context.Context, input workflow.SubmitRequestInput) (*domain.PermissionRequest, error) {
	if mock.SubmitRequestFunc == nil {
		panic("documentServiceMock.SubmitRequestFunc: method is nil but documentService.SubmitRequest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.SubmitRequestInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitRequest.Lock()
	mock.calls.SubmitRequest = append(mock.calls.SubmitRequest, callInfo)
	mock.lockSubmitRequest.Unlock()
	return mock.SubmitRequestFunc(ctx, input)
}

func (mock *documentServiceMock) SubmitRequestCalls() []struct {
	Ctx   context.Context
	Input workflow.SubmitRequestInput
} {
	mock.lockSubmitRequest.RLock()
	calls := mock.calls.SubmitRequest
	mock.lockSubmitRequest.RUnlock()
	return calls
}

func (mock *documentServiceMock) ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	if mock.ListDocumentsFunc == nil {
		panic("documentServiceMock.ListDocumentsFunc: method is nil but documentService.ListDocuments was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.DocumentFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListDocuments.Lock()
	mock.calls.ListDocuments = append(mock.calls.ListDocuments, callInfo)
	mock.lockListDocuments.Unlock()
	return mock.ListDocumentsFunc(ctx, filter)
}

func (mock *documentServiceMock) ListDocumentsCalls() []struct {
	Ctx    context.Context
	Filter domain.DocumentFilter
} {
	mock.lockListDocuments.RLock()
	calls := mock.calls.ListDocuments
	mock.lockListDocuments.RUnlock()
	return calls
}

func (mock *documentServiceMock) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetDocumentFunc == nil {
		panic("documentServiceMock.GetDocumentFunc: method is nil but documentService.GetDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetDocument.Lock()
	mock.calls.GetDocument = append(mock.calls.GetDocument, callInfo)
	mock.lockGetDocument.Unlock()
	return mock.GetDocumentFunc(ctx, id)
}

func (mock *documentServiceMock) GetDocumentCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetDocument.RLock()
	calls := mock.calls.GetDocument
	mock.lockGetDocument.RUnlock()
	return calls
}

func (mock *documentServiceMock) DocumentHistory(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error) {
	if mock.DocumentHistoryFunc == nil {
		panic("documentServiceMock.DocumentHistoryFunc: method is nil but documentService.DocumentHistory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID uuid.UUID
	}{Ctx: ctx, DocumentID: documentID}
	mock.lockDocumentHistory.Lock()
	mock.calls.DocumentHistory = append(mock.calls.DocumentHistory, callInfo)
	mock.lockDocumentHistory.Unlock()
	return mock.DocumentHistoryFunc(ctx, documentID)
}

func (mock *documentServiceMock) DocumentHistoryCalls() []struct {
	Ctx        context.Context
	DocumentID uuid.UUID
} {
	mock.lockDocumentHistory.RLock()
	calls := mock.calls.DocumentHistory
	mock.lockDocumentHistory.RUnlock()
	return calls
}

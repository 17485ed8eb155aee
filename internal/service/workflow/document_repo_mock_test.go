package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc       func(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error)
	ListFunc         func(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Document
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.DocumentStatus
		}
		List []struct {
			Ctx    context.Context
			Filter domain.DocumentFilter
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Document
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *documentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Document
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetForUpdateFunc == nil {
		panic("documentRepoMock.GetForUpdateFunc: method is nil but documentRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *documentRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *documentRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error) {
	if mock.UpdateStatusFunc == nil {
		panic("documentRepoMock.UpdateStatusFunc: method is nil but documentRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.DocumentStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *documentRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.DocumentStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *documentRepoMock) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	if mock.ListFunc == nil {
		panic("documentRepoMock.ListFunc: method is nil but documentRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.DocumentFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *documentRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.DocumentFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

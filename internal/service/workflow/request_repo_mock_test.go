package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	CreateFunc       func(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error)
	GetForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.PermissionRequest, error)
	ResolveFunc      func(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error)
	ListPendingFunc  func(ctx context.Context) ([]domain.PermissionRequest, error)
	ListResolvedFunc func(ctx context.Context) ([]domain.PermissionRequest, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.PermissionRequest
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Resolve []struct {
			Ctx context.Context
			P   *domain.PermissionRequest
		}
		ListPending  []struct{ Ctx context.Context }
		ListResolved []struct{ Ctx context.Context }
	}
	lockCreate       sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockResolve      sync.RWMutex
	lockListPending  sync.RWMutex
	lockListResolved sync.RWMutex
}

func (mock *requestRepoMock) Create(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PermissionRequest
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.PermissionRequest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PermissionRequest, error) {
	if mock.GetForUpdateFunc == nil {
		panic("requestRepoMock.GetForUpdateFunc: method is nil but requestRepo.GetForUpdate was just called")
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

func (mock *requestRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *requestRepoMock) Resolve(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error) {
	if mock.ResolveFunc == nil {
		panic("requestRepoMock.ResolveFunc: method is nil but requestRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PermissionRequest
	}{Ctx: ctx, P: p}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, p)
}

func (mock *requestRepoMock) ResolveCalls() []struct {
	Ctx context.Context
	P   *domain.PermissionRequest
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *requestRepoMock) ListPending(ctx context.Context) ([]domain.PermissionRequest, error) {
	if mock.ListPendingFunc == nil {
		panic("requestRepoMock.ListPendingFunc: method is nil but requestRepo.ListPending was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *requestRepoMock) ListPendingCalls() []struct{ Ctx context.Context } {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *requestRepoMock) ListResolved(ctx context.Context) ([]domain.PermissionRequest, error) {
	if mock.ListResolvedFunc == nil {
		panic("requestRepoMock.ListResolvedFunc: method is nil but requestRepo.ListResolved was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListResolved.Lock()
	mock.calls.ListResolved = append(mock.calls.ListResolved, callInfo)
	mock.lockListResolved.Unlock()
	return mock.ListResolvedFunc(ctx)
}

func (mock *requestRepoMock) ListResolvedCalls() []struct{ Ctx context.Context } {
	mock.lockListResolved.RLock()
	calls := mock.calls.ListResolved
	mock.lockListResolved.RUnlock()
	return calls
}

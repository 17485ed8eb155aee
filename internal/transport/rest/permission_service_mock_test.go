package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/workflow"
)

var _ permissionService = &permissionServiceMock{}

type permissionServiceMock struct {
	ListPendingRequestsFunc  func(ctx context.Context) ([]domain.PermissionRequest, error)
	ListResolvedRequestsFunc func(ctx context.Context) ([]domain.PermissionRequest, error)
	ResolveRequestFunc       func(ctx context.Context, input workflow.ResolveRequestInput) (*domain.PermissionRequest, error)
	ApproveRequestFunc       func(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error)
	RejectRequestFunc        func(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error)

	calls struct {
		ListPendingRequests  []struct{ Ctx context.Context }
		ListResolvedRequests []struct{ Ctx context.Context }
		ResolveRequest []struct {
			Ctx   context.Context
			Input workflow.ResolveRequestInput
		}
		ApproveRequest []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
		RejectRequest []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
	}
	lockListPendingRequests  sync.RWMutex
	lockListResolvedRequests sync.RWMutex
	lockResolveRequest       sync.RWMutex
	lockApproveRequest       sync.RWMutex
	lockRejectRequest        sync.RWMutex
}

func (mock *permissionServiceMock) ListPendingRequests(ctx context.Context) ([]domain.PermissionRequest, error) {
	if mock.ListPendingRequestsFunc == nil {
		panic("permissionServiceMock.ListPendingRequestsFunc: method is nil but permissionService.ListPendingRequests was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListPendingRequests.Lock()
	mock.calls.ListPendingRequests = append(mock.calls.ListPendingRequests, callInfo)
	mock.lockListPendingRequests.Unlock()
	return mock.ListPendingRequestsFunc(ctx)
}

func (mock *permissionServiceMock) ListPendingRequestsCalls() []struct{ Ctx context.Context } {
	mock.lockListPendingRequests.RLock()
	calls := mock.calls.ListPendingRequests
	mock.lockListPendingRequests.RUnlock()
	return calls
}

func (mock *permissionServiceMock) ListResolvedRequests(ctx context.Context) ([]domain.PermissionRequest, error) {
	if mock.ListResolvedRequestsFunc == nil {
		panic("permissionServiceMock.ListResolvedRequestsFunc: method is nil but permissionService.ListResolvedRequests was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListResolvedRequests.Lock()
	mock.calls.ListResolvedRequests = append(mock.calls.ListResolvedRequests, callInfo)
	mock.lockListResolvedRequests.Unlock()
	return mock.ListResolvedRequestsFunc(ctx)
}

func (mock *permissionServiceMock) ListResolvedRequestsCalls() []struct{ Ctx context.Context } {
	mock.lockListResolvedRequests.RLock()
	calls := mock.calls.ListResolvedRequests
	mock.lockListResolvedRequests.RUnlock()
	return calls
}

func (mock *permissionServiceMock) ResolveRequest(ctx context.Context, input workflow.ResolveRequestInput) (*domain.PermissionRequest, error) {
	if mock.ResolveRequestFunc == nil {
		panic("permissionServiceMock.ResolveRequestFunc: method is nil but permissionService.ResolveRequest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.ResolveRequestInput
	}{Ctx: ctx, Input: input}
	mock.lockResolveRequest.Lock()
	mock.calls.ResolveRequest = append(mock.calls.ResolveRequest, callInfo)
	mock.lockResolveRequest.Unlock()
	return mock.ResolveRequestFunc(ctx, input)
}

func (mock *permissionServiceMock) ResolveRequestCalls() []struct {
	Ctx   context.Context
	Input workflow.ResolveRequestInput
} {
	mock.lockResolveRequest.RLock()
	calls := mock.calls.ResolveRequest
	mock.lockResolveRequest.RUnlock()
	return calls
}

func (mock *permissionServiceMock) ApproveRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error) {
	if mock.ApproveRequestFunc == nil {
		panic("permissionServiceMock.ApproveRequestFunc: method is nil but permissionService.ApproveRequest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lockApproveRequest.Lock()
	mock.calls.ApproveRequest = append(mock.calls.ApproveRequest, callInfo)
	mock.lockApproveRequest.Unlock()
	return mock.ApproveRequestFunc(ctx, requestID)
}

func (mock *permissionServiceMock) ApproveRequestCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lockApproveRequest.RLock()
	calls := mock.calls.ApproveRequest
	mock.lockApproveRequest.RUnlock()
	return calls
}

func (mock *permissionServiceMock) RejectRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error) {
	if mock.RejectRequestFunc == nil {
		panic("permissionServiceMock.RejectRequestFunc: method is nil but permissionService.RejectRequest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lockRejectRequest.Lock()
	mock.calls.RejectRequest = append(mock.calls.RejectRequest, callInfo)
	mock.lockRejectRequest.Unlock()
	return mock.RejectRequestFunc(ctx, requestID)
}

func (mock *permissionServiceMock) RejectRequestCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lockRejectRequest.RLock()
	calls := mock.calls.RejectRequest
	mock.lockRejectRequest.RUnlock()
	return calls
}

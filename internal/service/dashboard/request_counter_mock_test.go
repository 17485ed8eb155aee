package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ requestCounter = &requestCounterMock{}

type requestCounterMock struct {
	CountPendingFunc func(ctx context.Context, requestedBy *uuid.UUID) (int, error)

	calls struct {
		CountPending []struct {
			Ctx         context.Context
			RequestedBy *uuid.UUID
		}
	}
	lockCountPending sync.RWMutex
}

func (mock *requestCounterMock) CountPending(ctx context.Context, requestedBy *uuid.UUID) (int, error) {
	if mock.CountPendingFunc == nil {
		panic("requestCounterMock.CountPendingFunc: method is nil but requestCounter.CountPending was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RequestedBy *uuid.UUID
	}{Ctx: ctx, RequestedBy: requestedBy}
	mock.lockCountPending.Lock()
	mock.calls.CountPending = append(mock.calls.CountPending, callInfo)
	mock.lockCountPending.Unlock()
	return mock.CountPendingFunc(ctx, requestedBy)
}

func (mock *requestCounterMock) CountPendingCalls() []struct {
	Ctx         context.Context
	RequestedBy *uuid.UUID
} {
	mock.lockCountPending.RLock()
	calls := mock.calls.CountPending
	mock.lockCountPending.RUnlock()
	return calls
}

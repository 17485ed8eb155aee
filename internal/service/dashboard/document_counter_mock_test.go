package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ documentCounter = &documentCounterMock{}

type documentCounterMock struct {
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)

	calls struct {
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCountByOwner sync.RWMutex
}

func (mock *documentCounterMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("documentCounterMock.CountByOwnerFunc: method is nil but documentCounter.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

func (mock *documentCounterMock) CountByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ notificationCounter = &notificationCounterMock{}

type notificationCounterMock struct {
	CountUnreadFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CountUnread []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCountUnread sync.RWMutex
}

func (mock *notificationCounterMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationCounterMock.CountUnreadFunc: method is nil but notificationCounter.CountUnread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, userID)
}

func (mock *notificationCounterMock) CountUnreadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListIDsByRoleFunc func(ctx context.Context, role domain.UserRole) ([]uuid.UUID, error)

	calls struct {
		ListIDsByRole []struct {
			Ctx  context.Context
			Role domain.UserRole
		}
	}
	lockListIDsByRole sync.RWMutex
}

func (mock *userRepoMock) ListIDsByRole(ctx context.Context, role domain.UserRole) ([]uuid.UUID, error) {
	if mock.ListIDsByRoleFunc == nil {
		panic("userRepoMock.ListIDsByRoleFunc: method is nil but userRepo.ListIDsByRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role domain.UserRole
	}{Ctx: ctx, Role: role}
	mock.lockListIDsByRole.Lock()
	mock.calls.ListIDsByRole = append(mock.calls.ListIDsByRole, callInfo)
	mock.lockListIDsByRole.Unlock()
	return mock.ListIDsByRoleFunc(ctx, role)
}

func (mock *userRepoMock) ListIDsByRoleCalls() []struct {
	Ctx  context.Context
	Role domain.UserRole
} {
	mock.lockListIDsByRole.RLock()
	calls := mock.calls.ListIDsByRole
	mock.lockListIDsByRole.RUnlock()
	return calls
}

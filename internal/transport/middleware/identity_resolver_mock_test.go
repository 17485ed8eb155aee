package middleware

import (
	"context"
	"github.com/heartmarshall/dms-backend/internal/domain"
	"sync"
)

var _ identityResolver = &identityResolverMock{}

type identityResolverMock struct {
	ResolveIdentityFunc func(ctx context.Context, token string) (domain.Actor, error)

	calls struct {
		ResolveIdentity []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolveIdentity sync.RWMutex
}

func (mock *identityResolverMock) ResolveIdentity(ctx context.Context, token string) (domain.Actor, error) {
	if mock.ResolveIdentityFunc == nil {
		panic("identityResolverMock.ResolveIdentityFunc: method is nil but identityResolver.ResolveIdentity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolveIdentity.Lock()
	mock.calls.ResolveIdentity = append(mock.calls.ResolveIdentity, callInfo)
	mock.lockResolveIdentity.Unlock()
	return mock.ResolveIdentityFunc(ctx, token)
}

func (mock *identityResolverMock) ResolveIdentityCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolveIdentity.RLock()
	calls := mock.calls.ResolveIdentity
	mock.lockResolveIdentity.RUnlock()
	return calls
}

package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ accountHooks = &accountHooksMock{}

type accountHooksMock struct {
	OnAccountCreatedFunc func(ctx context.Context, userID uuid.UUID) (*domain.CreditRecord, error)

	calls struct {
		OnAccountCreated []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockOnAccountCreated sync.RWMutex
}

func (mock *accountHooksMock) OnAccountCreated(ctx context.Context, userID uuid.UUID) (*domain.CreditRecord, error) {
	if mock.OnAccountCreatedFunc == nil {
		panic("accountHooksMock.OnAccountCreatedFunc: method is nil but accountHooks.OnAccountCreated was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockOnAccountCreated.Lock()
	mock.calls.OnAccountCreated = append(mock.calls.OnAccountCreated, callInfo)
	mock.lockOnAccountCreated.Unlock()
	return mock.OnAccountCreatedFunc(ctx, userID)
}

func (mock *accountHooksMock) OnAccountCreatedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockOnAccountCreated.RLock()
	calls = mock.calls.OnAccountCreated
	mock.lockOnAccountCreated.RUnlock()
	return calls
}

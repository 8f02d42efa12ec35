package credit

import (
	"context"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockGetByUsername.RLock()
	calls = mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ freetService = &freetServiceMock{}

type freetServiceMock struct {
	CreateFunc         func(ctx context.Context, content string) (*domain.Freet, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListByUsernameFunc func(ctx context.Context, username string) ([]domain.Freet, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Content string
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockListByUsername sync.RWMutex
}

func (mock *freetServiceMock) Create(ctx context.Context, content string) (*domain.Freet, error) {
	if mock.CreateFunc == nil {
		panic("freetServiceMock.CreateFunc: method is nil but freetService.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Content string
	}{
		Ctx:     ctx,
		Content: content,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, content)
}

func (mock *freetServiceMock) CreateCalls() []struct {
	Ctx     context.Context
	Content string
} {
	var calls []struct {
		Ctx     context.Context
		Content string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *freetServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("freetServiceMock.DeleteFunc: method is nil but freetService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *freetServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *freetServiceMock) ListByUsername(ctx context.Context, username string) ([]domain.Freet, error) {
	if mock.ListByUsernameFunc == nil {
		panic("freetServiceMock.ListByUsernameFunc: method is nil but freetService.ListByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockListByUsername.Lock()
	mock.calls.ListByUsername = append(mock.calls.ListByUsername, callInfo)
	mock.lockListByUsername.Unlock()
	return mock.ListByUsernameFunc(ctx, username)
}

func (mock *freetServiceMock) ListByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockListByUsername.RLock()
	calls = mock.calls.ListByUsername
	mock.lockListByUsername.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/scheduled"
	"sync"
)

var _ scheduledService = &scheduledServiceMock{}

type scheduledServiceMock struct {
	CreateFunc         func(ctx context.Context, input scheduled.ScheduleInput) (*domain.ScheduledItem, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListAllFunc        func(ctx context.Context) ([]domain.ScheduledItem, error)
	ListByUsernameFunc func(ctx context.Context, username string) ([]domain.ScheduledItem, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, input scheduled.ScheduleInput) (*domain.ScheduledItem, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input scheduled.ScheduleInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListAll []struct {
			Ctx context.Context
		}
		ListByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input scheduled.ScheduleInput
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockListAll        sync.RWMutex
	lockListByUsername sync.RWMutex
	lockUpdate         sync.RWMutex
}

func (mock *scheduledServiceMock) Create(ctx context.Context, input scheduled.ScheduleInput) (*domain.ScheduledItem, error) {
	if mock.CreateFunc == nil {
		panic("scheduledServiceMock.CreateFunc: method is nil but scheduledService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scheduled.ScheduleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *scheduledServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input scheduled.ScheduleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input scheduled.ScheduleInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scheduledServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("scheduledServiceMock.DeleteFunc: method is nil but scheduledService.Delete was just called")
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

func (mock *scheduledServiceMock) DeleteCalls() []struct {
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

func (mock *scheduledServiceMock) ListAll(ctx context.Context) ([]domain.ScheduledItem, error) {
	if mock.ListAllFunc == nil {
		panic("scheduledServiceMock.ListAllFunc: method is nil but scheduledService.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *scheduledServiceMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *scheduledServiceMock) ListByUsername(ctx context.Context, username string) ([]domain.ScheduledItem, error) {
	if mock.ListByUsernameFunc == nil {
		panic("scheduledServiceMock.ListByUsernameFunc: method is nil but scheduledService.ListByUsername was just called")
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

func (mock *scheduledServiceMock) ListByUsernameCalls() []struct {
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

func (mock *scheduledServiceMock) Update(ctx context.Context, id uuid.UUID, input scheduled.ScheduleInput) (*domain.ScheduledItem, error) {
	if mock.UpdateFunc == nil {
		panic("scheduledServiceMock.UpdateFunc: method is nil but scheduledService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input scheduled.ScheduleInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *scheduledServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input scheduled.ScheduleInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input scheduled.ScheduleInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

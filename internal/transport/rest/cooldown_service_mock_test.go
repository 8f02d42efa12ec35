package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ cooldownService = &cooldownServiceMock{}

type cooldownServiceMock struct {
	GetFunc            func(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)
	SetProvocativeFunc func(ctx context.Context, freetID uuid.UUID, provocative bool) (*domain.CooldownRecord, error)

	calls struct {
		Get []struct {
			Ctx     context.Context
			FreetID uuid.UUID
		}
		SetProvocative []struct {
			Ctx         context.Context
			FreetID     uuid.UUID
			Provocative bool
		}
	}
	lockGet            sync.RWMutex
	lockSetProvocative sync.RWMutex
}

func (mock *cooldownServiceMock) Get(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	if mock.GetFunc == nil {
		panic("cooldownServiceMock.GetFunc: method is nil but cooldownService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}{
		Ctx:     ctx,
		FreetID: freetID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, freetID)
}

func (mock *cooldownServiceMock) GetCalls() []struct {
	Ctx     context.Context
	FreetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *cooldownServiceMock) SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool) (*domain.CooldownRecord, error) {
	if mock.SetProvocativeFunc == nil {
		panic("cooldownServiceMock.SetProvocativeFunc: method is nil but cooldownService.SetProvocative was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		FreetID     uuid.UUID
		Provocative bool
	}{
		Ctx:         ctx,
		FreetID:     freetID,
		Provocative: provocative,
	}
	mock.lockSetProvocative.Lock()
	mock.calls.SetProvocative = append(mock.calls.SetProvocative, callInfo)
	mock.lockSetProvocative.Unlock()
	return mock.SetProvocativeFunc(ctx, freetID, provocative)
}

func (mock *cooldownServiceMock) SetProvocativeCalls() []struct {
	Ctx         context.Context
	FreetID     uuid.UUID
	Provocative bool
} {
	var calls []struct {
		Ctx         context.Context
		FreetID     uuid.UUID
		Provocative bool
	}
	mock.lockSetProvocative.RLock()
	calls = mock.calls.SetProvocative
	mock.lockSetProvocative.RUnlock()
	return calls
}

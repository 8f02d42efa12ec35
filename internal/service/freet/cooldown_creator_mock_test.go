package freet

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ cooldownCreator = &cooldownCreatorMock{}

type cooldownCreatorMock struct {
	CreateFunc func(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			FreetID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
}

func (mock *cooldownCreatorMock) Create(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	if mock.CreateFunc == nil {
		panic("cooldownCreatorMock.CreateFunc: method is nil but cooldownCreator.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}{
		Ctx:     ctx,
		FreetID: freetID,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, freetID)
}

func (mock *cooldownCreatorMock) CreateCalls() []struct {
	Ctx     context.Context
	FreetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

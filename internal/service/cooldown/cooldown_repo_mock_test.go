package cooldown

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
	"time"
)

var _ cooldownRepo = &cooldownRepoMock{}

type cooldownRepoMock struct {
	CreateFunc         func(ctx context.Context, rec domain.CooldownRecord) (*domain.CooldownRecord, error)
	GetByFreetFunc     func(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)
	SetProvocativeFunc func(ctx context.Context, freetID uuid.UUID, provocative bool, now time.Time) (*domain.CooldownRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.CooldownRecord
		}
		GetByFreet []struct {
			Ctx     context.Context
			FreetID uuid.UUID
		}
		SetProvocative []struct {
			Ctx         context.Context
			FreetID     uuid.UUID
			Provocative bool
			Now         time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockGetByFreet     sync.RWMutex
	lockSetProvocative sync.RWMutex
}

func (mock *cooldownRepoMock) Create(ctx context.Context, rec domain.CooldownRecord) (*domain.CooldownRecord, error) {
	if mock.CreateFunc == nil {
		panic("cooldownRepoMock.CreateFunc: method is nil but cooldownRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.CooldownRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *cooldownRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.CooldownRecord
} {
	var calls []struct {
		Ctx context.Context
		Rec domain.CooldownRecord
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cooldownRepoMock) GetByFreet(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	if mock.GetByFreetFunc == nil {
		panic("cooldownRepoMock.GetByFreetFunc: method is nil but cooldownRepo.GetByFreet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}{
		Ctx:     ctx,
		FreetID: freetID,
	}
	mock.lockGetByFreet.Lock()
	mock.calls.GetByFreet = append(mock.calls.GetByFreet, callInfo)
	mock.lockGetByFreet.Unlock()
	return mock.GetByFreetFunc(ctx, freetID)
}

func (mock *cooldownRepoMock) GetByFreetCalls() []struct {
	Ctx     context.Context
	FreetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		FreetID uuid.UUID
	}
	mock.lockGetByFreet.RLock()
	calls = mock.calls.GetByFreet
	mock.lockGetByFreet.RUnlock()
	return calls
}

func (mock *cooldownRepoMock) SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool, now time.Time) (*domain.CooldownRecord, error) {
	if mock.SetProvocativeFunc == nil {
		panic("cooldownRepoMock.SetProvocativeFunc: method is nil but cooldownRepo.SetProvocative was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		FreetID     uuid.UUID
		Provocative bool
		Now         time.Time
	}{
		Ctx:         ctx,
		FreetID:     freetID,
		Provocative: provocative,
		Now:         now,
	}
	mock.lockSetProvocative.Lock()
	mock.calls.SetProvocative = append(mock.calls.SetProvocative, callInfo)
	mock.lockSetProvocative.Unlock()
	return mock.SetProvocativeFunc(ctx, freetID, provocative, now)
}

func (mock *cooldownRepoMock) SetProvocativeCalls() []struct {
	Ctx         context.Context
	FreetID     uuid.UUID
	Provocative bool
	Now         time.Time
} {
	var calls []struct {
		Ctx         context.Context
		FreetID     uuid.UUID
		Provocative bool
		Now         time.Time
	}
	mock.lockSetProvocative.RLock()
	calls = mock.calls.SetProvocative
	mock.lockSetProvocative.RUnlock()
	return calls
}

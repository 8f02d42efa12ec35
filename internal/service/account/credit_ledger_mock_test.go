package account

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"sync"
)

var _ creditLedger = &creditLedgerMock{}

type creditLedgerMock struct {
	CreateFunc func(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error)
	DeleteFunc func(ctx context.Context, owner uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Owner uuid.UUID
		}
		Delete []struct {
			Ctx   context.Context
			Owner uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *creditLedgerMock) Create(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error) {
	if mock.CreateFunc == nil {
		panic("creditLedgerMock.CreateFunc: method is nil but creditLedger.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner uuid.UUID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, owner)
}

func (mock *creditLedgerMock) CreateCalls() []struct {
	Ctx   context.Context
	Owner uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		Owner uuid.UUID
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *creditLedgerMock) Delete(ctx context.Context, owner uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("creditLedgerMock.DeleteFunc: method is nil but creditLedger.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner uuid.UUID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, owner)
}

func (mock *creditLedgerMock) DeleteCalls() []struct {
	Ctx   context.Context
	Owner uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		Owner uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/credit"
	"sync"
)

var _ creditService = &creditServiceMock{}

type creditServiceMock struct {
	ExchangeByUsernameFunc func(ctx context.Context, input credit.ExchangeInput) (*credit.ExchangeResult, error)
	GetMineFunc            func(ctx context.Context) (*domain.CreditRecord, error)

	calls struct {
		ExchangeByUsername []struct {
			Ctx   context.Context
			Input credit.ExchangeInput
		}
		GetMine []struct {
			Ctx context.Context
		}
	}
	lockExchangeByUsername sync.RWMutex
	lockGetMine            sync.RWMutex
}

func (mock *creditServiceMock) ExchangeByUsername(ctx context.Context, input credit.ExchangeInput) (*credit.ExchangeResult, error) {
	if mock.ExchangeByUsernameFunc == nil {
		panic("creditServiceMock.ExchangeByUsernameFunc: method is nil but creditService.ExchangeByUsername was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input credit.ExchangeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockExchangeByUsername.Lock()
	mock.calls.ExchangeByUsername = append(mock.calls.ExchangeByUsername, callInfo)
	mock.lockExchangeByUsername.Unlock()
	return mock.ExchangeByUsernameFunc(ctx, input)
}

func (mock *creditServiceMock) ExchangeByUsernameCalls() []struct {
	Ctx   context.Context
	Input credit.ExchangeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input credit.ExchangeInput
	}
	mock.lockExchangeByUsername.RLock()
	calls = mock.calls.ExchangeByUsername
	mock.lockExchangeByUsername.RUnlock()
	return calls
}

func (mock *creditServiceMock) GetMine(ctx context.Context) (*domain.CreditRecord, error) {
	if mock.GetMineFunc == nil {
		panic("creditServiceMock.GetMineFunc: method is nil but creditService.GetMine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetMine.Lock()
	mock.calls.GetMine = append(mock.calls.GetMine, callInfo)
	mock.lockGetMine.Unlock()
	return mock.GetMineFunc(ctx)
}

func (mock *creditServiceMock) GetMineCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetMine.RLock()
	calls = mock.calls.GetMine
	mock.lockGetMine.RUnlock()
	return calls
}

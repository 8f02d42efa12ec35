package credit

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ pairLocker = &pairLockerMock{}

type pairLockerMock struct {
	LockPairFunc func(ctx context.Context, a uuid.UUID, b uuid.UUID) (func(), error)

	calls struct {
		LockPair []struct {
			Ctx context.Context
			A   uuid.UUID
			B   uuid.UUID
		}
	}
	lockLockPair sync.RWMutex
}

func (mock *pairLockerMock) LockPair(ctx context.Context, a uuid.UUID, b uuid.UUID) (func(), error) {
	if mock.LockPairFunc == nil {
		panic("pairLockerMock.LockPairFunc: method is nil but pairLocker.LockPair was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}{
		Ctx: ctx,
		A:   a,
		B:   b,
	}
	mock.lockLockPair.Lock()
	mock.calls.LockPair = append(mock.calls.LockPair, callInfo)
	mock.lockLockPair.Unlock()
	return mock.LockPairFunc(ctx, a, b)
}

func (mock *pairLockerMock) LockPairCalls() []struct {
	Ctx context.Context
	A   uuid.UUID
	B   uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}
	mock.lockLockPair.RLock()
	calls = mock.calls.LockPair
	mock.lockLockPair.RUnlock()
	return calls
}

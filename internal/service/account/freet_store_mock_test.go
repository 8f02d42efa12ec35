package account

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ freetStore = &freetStoreMock{}

type freetStoreMock struct {
	DeleteByAuthorFunc func(ctx context.Context, authorID uuid.UUID) (int, error)

	calls struct {
		DeleteByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
		}
	}
	lockDeleteByAuthor sync.RWMutex
}

func (mock *freetStoreMock) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.DeleteByAuthorFunc == nil {
		panic("freetStoreMock.DeleteByAuthorFunc: method is nil but freetStore.DeleteByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}{
		Ctx:      ctx,
		AuthorID: authorID,
	}
	mock.lockDeleteByAuthor.Lock()
	mock.calls.DeleteByAuthor = append(mock.calls.DeleteByAuthor, callInfo)
	mock.lockDeleteByAuthor.Unlock()
	return mock.DeleteByAuthorFunc(ctx, authorID)
}

func (mock *freetStoreMock) DeleteByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}
	mock.lockDeleteByAuthor.RLock()
	calls = mock.calls.DeleteByAuthor
	mock.lockDeleteByAuthor.RUnlock()
	return calls
}

// Package lock provides the pair lease that serializes credit exchanges
// between the same two users.
package lock

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// PairKey identifies the unordered pair {a, b}: PairKey(a, b) == PairKey(b, a).
func PairKey(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if y < x {
		x, y = y, x
	}
	return x + ":" + y
}

// Local is an in-process keyed mutex. It serializes exchanges handled by a
// single server instance; use the Redis lease when several instances share
// one database.
type Local struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	token chan struct{}
	refs  int
}

// NewLocal creates an empty keyed mutex.
func NewLocal() *Local {
	return &Local{slots: make(map[string]*slot)}
}

// LockPair blocks until the pair lease is held or ctx is done. A lease that
// cannot be acquired before ctx ends yields domain.ErrConflict. The returned
// func releases the lease and must be called exactly once.
func (l *Local) LockPair(ctx context.Context, a, b uuid.UUID) (func(), error) {
	key := PairKey(a, b)

	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{token: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.token <- struct{}{}:
	case <-ctx.Done():
		l.release(key, s)
		return nil, fmt.Errorf("pair lock %s: %w", key, domain.ErrConflict)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.token
			l.release(key, s)
		})
	}, nil
}

// release drops one reference and forgets the slot once nobody holds or
// waits for it.
func (l *Local) release(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// Len returns the number of pairs currently held or awaited.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

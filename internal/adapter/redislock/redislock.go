// Package redislock implements the credit exchange pair lease on Redis so
// that several server instances serialize exchanges on the same pair.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/lock"
)

const (
	keyPrefix     = "fritter:credit:pair:"
	retryInterval = 20 * time.Millisecond
	releaseWait   = 2 * time.Second
)

// releaseScript deletes the key only if it still carries our token, so an
// expired lease taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// PairLock is a lease per unordered user pair: SET NX PX with a random token,
// released by a token-checked delete. The TTL bounds how long a crashed
// holder can block the pair.
type PairLock struct {
	client redis.UniversalClient
	ttl    time.Duration
	log    *slog.Logger
}

// NewPairLock creates a Redis-backed pair lock with the given lease TTL.
func NewPairLock(logger *slog.Logger, client redis.UniversalClient, ttl time.Duration) *PairLock {
	return &PairLock{
		client: client,
		ttl:    ttl,
		log:    logger.With("component", "redis_pair_lock"),
	}
}

// LockPair polls until the lease is acquired or ctx is done. Running out of
// ctx yields domain.ErrConflict; Redis failures are returned as-is.
func (p *PairLock) LockPair(ctx context.Context, a, b uuid.UUID) (func(), error) {
	key := keyPrefix + lock.PairKey(a, b)
	token := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := p.client.SetNX(ctx, key, token, p.ttl).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, fmt.Errorf("pair lock %s: %w", key, domain.ErrConflict)
			}
			return nil, fmt.Errorf("pair lock %s: %w", key, err)
		}
		if ok {
			return p.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("pair lock %s: %w", key, domain.ErrConflict)
		case <-ticker.C:
		}
	}
}

func (p *PairLock) releaser(key, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true

		ctx, cancel := context.WithTimeout(context.Background(), releaseWait)
		defer cancel()

		if err := releaseScript.Run(ctx, p.client, []string{key}, token).Err(); err != nil {
			p.log.Warn("release pair lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

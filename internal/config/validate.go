package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Ledger.validate(c.Redis); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if c.Content.MaxLength <= 0 {
		return fmt.Errorf("content.max_length must be > 0 (got %d)", c.Content.MaxLength)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMin <= 0 {
			return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (l LedgerConfig) validate(redis RedisConfig) error {
	switch strings.ToLower(l.LockBackend) {
	case LockBackendLocal:
	case LockBackendRedis:
		if redis.Addr == "" {
			return fmt.Errorf("lock_backend %q requires redis.addr", l.LockBackend)
		}
		if l.LockTTL <= 0 {
			return fmt.Errorf("lock_ttl must be > 0 (got %v)", l.LockTTL)
		}
	default:
		return fmt.Errorf("lock_backend must be %q or %q (got %q)", LockBackendLocal, LockBackendRedis, l.LockBackend)
	}
	if l.LockWait <= 0 {
		return fmt.Errorf("lock_wait must be > 0 (got %v)", l.LockWait)
	}
	return nil
}

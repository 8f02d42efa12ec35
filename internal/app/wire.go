package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/fritter-backend/internal/adapter/postgres"
	cooldownrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/cooldown"
	creditrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/credit"
	freetrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/freet"
	reflectionrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/reflection"
	scheduledrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/scheduled"
	userrepo "github.com/heartmarshall/fritter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/fritter-backend/internal/adapter/redislock"
	authpkg "github.com/heartmarshall/fritter-backend/internal/auth"
	"github.com/heartmarshall/fritter-backend/internal/config"
	"github.com/heartmarshall/fritter-backend/internal/lock"
	"github.com/heartmarshall/fritter-backend/internal/service/account"
	authsvc "github.com/heartmarshall/fritter-backend/internal/service/auth"
	"github.com/heartmarshall/fritter-backend/internal/service/cooldown"
	"github.com/heartmarshall/fritter-backend/internal/service/credit"
	"github.com/heartmarshall/fritter-backend/internal/service/freet"
	"github.com/heartmarshall/fritter-backend/internal/service/reflection"
	"github.com/heartmarshall/fritter-backend/internal/service/scheduled"
	"github.com/heartmarshall/fritter-backend/internal/transport/middleware"
	"github.com/heartmarshall/fritter-backend/internal/transport/rest"
)

// PairLocker serializes credit exchanges between the same two users.
type PairLocker interface {
	LockPair(ctx context.Context, a, b uuid.UUID) (func(), error)
}

// NewPairLocker selects the lease backend from the ledger config. The Redis
// backend requires a connected client.
func NewPairLocker(cfg config.LedgerConfig, logger *slog.Logger, rdb redis.UniversalClient) (PairLocker, error) {
	if !cfg.UsesRedis() {
		return lock.NewLocal(), nil
	}
	if rdb == nil {
		return nil, fmt.Errorf("ledger lock backend %q: redis is not configured", cfg.LockBackend)
	}
	return redislock.NewPairLock(logger, rdb, cfg.LockTTL), nil
}

// Services is the set of application services built over one database pool.
type Services struct {
	Auth      *authsvc.Service
	Accounts  *account.Service
	Credits   *credit.Service
	Cooldowns *cooldown.Service
	Scheduled *scheduled.Service
	Freets    *freet.Service

	Reflections *reflection.Service
}

// NewServices wires repositories and services over pool.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, locker PairLocker) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	credits := creditrepo.New(pool)
	cooldowns := cooldownrepo.New(pool)
	items := scheduledrepo.New(pool)
	freets := freetrepo.New(pool)
	reflections := reflectionrepo.New(pool)

	creditSvc := credit.NewService(logger, credits, users, locker, txm, cfg.Ledger.LockWait)
	cooldownSvc := cooldown.NewService(logger, cooldowns)
	scheduledSvc := scheduled.NewService(logger, items, users, txm, cfg.Content.MaxLength)
	freetSvc := freet.NewService(logger, freets, users, cooldownSvc, txm, cfg.Content.MaxLength)
	reflectionSvc := reflection.NewService(logger, reflections, freets, users, txm, cfg.Content.MaxLength)
	accountSvc := account.NewService(logger, creditSvc, items, reflections, freetSvc, users, txm)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, accountSvc, txm, jwtManager, cfg.Auth)

	return &Services{
		Auth:      authService,
		Accounts:  accountSvc,
		Credits:   creditSvc,
		Cooldowns: cooldownSvc,
		Scheduled: scheduledSvc,
		Freets:    freetSvc,

		Reflections: reflectionSvc,
	}
}

// NewHandler builds the HTTP handler over svcs. limiter may be nil.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	svcs *Services,
	health *rest.HealthHandler,
	limiter *middleware.RateLimiter,
) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Tokens:      svcs.Auth,
		Health:      health,
		Users:       rest.NewUserHandler(svcs.Auth, svcs.Accounts, logger),
		Credits:     rest.NewCreditHandler(svcs.Credits, logger),
		Cooldowns:   rest.NewCooldownHandler(svcs.Cooldowns, logger),
		Scheduled:   rest.NewScheduledHandler(svcs.Scheduled, logger),
		Freets:      rest.NewFreetHandler(svcs.Freets, logger),
		Reflections: rest.NewReflectionHandler(svcs.Reflections, logger),
	})
}

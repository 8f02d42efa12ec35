package credit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

const DefaultLockWait = 2 * time.Second

type creditRepo interface {
	GetByOwner(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error)
	LockByOwners(ctx context.Context, owners ...uuid.UUID) ([]domain.CreditRecord, error)
	Create(ctx context.Context, rec domain.CreditRecord) (*domain.CreditRecord, error)
	Update(ctx context.Context, rec domain.CreditRecord) error
	DeleteByOwner(ctx context.Context, owner uuid.UUID) (bool, error)
	Backfill(ctx context.Context, now time.Time) (int, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// pairLocker serializes work on an unordered pair of users. The returned
// func releases the lease; acquisition fails with domain.ErrConflict once
// ctx is done.
type pairLocker interface {
	LockPair(ctx context.Context, a, b uuid.UUID) (func(), error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the credit ledger.
type Service struct {
	credits  creditRepo
	users    userRepo
	locker   pairLocker
	tx       txManager
	lockWait time.Duration
	clock    func() time.Time
	log      *slog.Logger
}

// NewService creates a new credit ledger service. A non-positive lockWait
// falls back to DefaultLockWait.
func NewService(
	log *slog.Logger,
	credits creditRepo,
	users userRepo,
	locker pairLocker,
	tx txManager,
	lockWait time.Duration,
) *Service {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &Service{
		credits:  credits,
		users:    users,
		locker:   locker,
		tx:       tx,
		lockWait: lockWait,
		clock:    time.Now,
		log:      log.With("service", "credit"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

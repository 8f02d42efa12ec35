package scheduled

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type scheduledRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledItem, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ScheduledItem, error)
	ListAll(ctx context.Context) ([]domain.ScheduledItem, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.ScheduledItem, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.ScheduledItem, error)
	Create(ctx context.Context, item *domain.ScheduledItem) (*domain.ScheduledItem, error)
	Update(ctx context.Context, item *domain.ScheduledItem) (*domain.ScheduledItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages freets scheduled for future publication. It never
// publishes anything itself; ListDue exposes what an external publisher
// would pick up.
type Service struct {
	items  scheduledRepo
	users  userRepo
	tx     txManager
	maxLen int
	clock  func() time.Time
	log    *slog.Logger
}

// NewService creates a new scheduled freet service. A non-positive maxLen
// falls back to domain.DefaultMaxContentLength.
func NewService(
	log *slog.Logger,
	items scheduledRepo,
	users userRepo,
	tx txManager,
	maxLen int,
) *Service {
	if maxLen <= 0 {
		maxLen = domain.DefaultMaxContentLength
	}
	return &Service{
		items:  items,
		users:  users,
		tx:     tx,
		maxLen: maxLen,
		clock:  time.Now,
		log:    log.With("service", "scheduled"),
	}
}

// now is truncated to storage precision so a publish date that passes the
// strict-future check is still later than created_at once persisted.
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(storagePrecision)
}

package reflection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type reflectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reflection, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reflection, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, publicOnly bool) ([]domain.Reflection, error)
	ListByFreet(ctx context.Context, freetID uuid.UUID) ([]domain.Reflection, error)
	Create(ctx context.Context, ref *domain.Reflection) (*domain.Reflection, error)
	Update(ctx context.Context, ref *domain.Reflection) (*domain.Reflection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type freetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Freet, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages reflections: short notes a user attaches to a freet,
// either public or visible to their author only.
type Service struct {
	reflections reflectionRepo
	freets      freetRepo
	users       userRepo
	tx          txManager
	maxLen      int
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new reflection service. A non-positive maxLen
// falls back to domain.DefaultMaxContentLength.
func NewService(
	log *slog.Logger,
	reflections reflectionRepo,
	freets freetRepo,
	users userRepo,
	tx txManager,
	maxLen int,
) *Service {
	if maxLen <= 0 {
		maxLen = domain.DefaultMaxContentLength
	}
	return &Service{
		reflections: reflections,
		freets:      freets,
		users:       users,
		tx:          tx,
		maxLen:      maxLen,
		clock:       time.Now,
		log:         log.With("service", "reflection"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

package freet

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type freetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Freet, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Freet, error)
	Create(ctx context.Context, f *domain.Freet) (*domain.Freet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// cooldownCreator attaches the moderation record to a new freet.
type cooldownCreator interface {
	Create(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service stores published freets.
type Service struct {
	freets    freetRepo
	users     userRepo
	cooldowns cooldownCreator
	tx        txManager
	maxLen    int
	clock     func() time.Time
	log       *slog.Logger
}

// NewService creates a new freet service. A non-positive maxLen falls back
// to domain.DefaultMaxContentLength.
func NewService(
	log *slog.Logger,
	freets freetRepo,
	users userRepo,
	cooldowns cooldownCreator,
	tx txManager,
	maxLen int,
) *Service {
	if maxLen <= 0 {
		maxLen = domain.DefaultMaxContentLength
	}
	return &Service{
		freets:    freets,
		users:     users,
		cooldowns: cooldowns,
		tx:        tx,
		maxLen:    maxLen,
		clock:     time.Now,
		log:       log.With("service", "freet"),
	}
}

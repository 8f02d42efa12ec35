package cooldown

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type cooldownRepo interface {
	GetByFreet(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error)
	Create(ctx context.Context, rec domain.CooldownRecord) (*domain.CooldownRecord, error)
	SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool, now time.Time) (*domain.CooldownRecord, error)
}

// Service is the per-freet moderation gate.
type Service struct {
	cooldowns cooldownRepo
	clock     func() time.Time
	log       *slog.Logger
}

// NewService creates a new cooldown service.
func NewService(log *slog.Logger, cooldowns cooldownRepo) *Service {
	return &Service{
		cooldowns: cooldowns,
		clock:     time.Now,
		log:       log.With("service", "cooldown"),
	}
}

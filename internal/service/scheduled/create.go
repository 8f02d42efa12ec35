package scheduled

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/metrics"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Create schedules a freet owned by the caller. PublishAt must be strictly
// in the future.
func (s *Service) Create(ctx context.Context, input ScheduleInput) (*domain.ScheduledItem, error) {
	item, err := s.create(ctx, input)
	metrics.ScheduledOps.WithLabelValues("create", metrics.Outcome(err)).Inc()
	return item, err
}

func (s *Service) create(ctx context.Context, input ScheduleInput) (*domain.ScheduledItem, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	content, publishAt, err := input.normalize(now, s.maxLen)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, &domain.ScheduledItem{
		ID:        uuid.New(),
		Owner:     userID,
		Content:   content,
		PublishAt: publishAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create scheduled freet: %w", err)
	}

	s.log.InfoContext(ctx, "freet scheduled",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Time("publish_at", item.PublishAt),
	)

	return item, nil
}

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

// Update replaces content and publish date of an item owned by the caller.
// The item is left unchanged on any failure.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input ScheduleInput) (*domain.ScheduledItem, error) {
	item, err := s.update(ctx, id, input)
	metrics.ScheduledOps.WithLabelValues("update", metrics.Outcome(err)).Inc()
	return item, err
}

func (s *Service) update(ctx context.Context, id uuid.UUID, input ScheduleInput) (*domain.ScheduledItem, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.ScheduledItem
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.items.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get scheduled freet: %w", err)
		}
		if current.Owner != userID {
			return domain.ErrForbidden
		}

		now := s.now()
		content, publishAt, err := input.normalize(now, s.maxLen)
		if err != nil {
			return err
		}

		next := *current
		next.Content = content
		next.PublishAt = publishAt
		next.UpdatedAt = now

		updated, err = s.items.Update(ctx, &next)
		if err != nil {
			return fmt.Errorf("update scheduled freet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "scheduled freet updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
		slog.Time("publish_at", updated.PublishAt),
	)

	return updated, nil
}

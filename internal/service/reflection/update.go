package reflection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/metrics"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Update edits a reflection owned by the caller.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reflection, error) {
	ref, err := s.update(ctx, id, input)
	metrics.ReflectionOps.WithLabelValues("update", metrics.Outcome(err)).Inc()
	return ref, err
}

func (s *Service) update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reflection, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Reflection
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.reflections.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get reflection: %w", err)
		}
		if current.Owner != userID {
			return domain.ErrForbidden
		}

		next := *current
		if input.Content != nil {
			content, err := domain.NormalizeContent(*input.Content, s.maxLen)
			if err != nil {
				return err
			}
			next.Content = content
		}
		next.Public = *input.Public
		next.UpdatedAt = s.now()

		updated, err = s.reflections.Update(ctx, &next)
		if err != nil {
			return fmt.Errorf("update reflection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reflection updated",
		slog.String("user_id", userID.String()),
		slog.String("reflection_id", id.String()),
		slog.Bool("public", updated.Public),
	)

	return updated, nil
}

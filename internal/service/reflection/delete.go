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

// Delete removes a reflection owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.delete(ctx, id)
	metrics.ReflectionOps.WithLabelValues("delete", metrics.Outcome(err)).Inc()
	return err
}

func (s *Service) delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.reflections.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get reflection: %w", err)
		}
		if current.Owner != userID {
			return domain.ErrForbidden
		}

		if err := s.reflections.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete reflection: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reflection deleted",
		slog.String("user_id", userID.String()),
		slog.String("reflection_id", id.String()),
	)

	return nil
}

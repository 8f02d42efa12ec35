package freet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Delete removes a freet authored by the caller. Its cooldown record is
// removed by the database cascade.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	f, err := s.freets.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get freet: %w", err)
	}
	if f.AuthorID != userID {
		return domain.ErrForbidden
	}

	if err := s.freets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete freet: %w", err)
	}

	s.log.InfoContext(ctx, "freet deleted",
		slog.String("user_id", userID.String()),
		slog.String("freet_id", id.String()),
	)

	return nil
}

// DeleteByAuthor removes every freet of authorID and returns how many were
// removed. Used by account teardown.
func (s *Service) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	n, err := s.freets.DeleteByAuthor(ctx, authorID)
	if err != nil {
		return 0, fmt.Errorf("delete freets by author: %w", err)
	}
	return n, nil
}

package freet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Create publishes a freet by the caller together with its cooldown record.
func (s *Service) Create(ctx context.Context, content string) (*domain.Freet, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	normalized, err := domain.NormalizeContent(content, s.maxLen)
	if err != nil {
		return nil, err
	}

	var created *domain.Freet
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		f, err := s.freets.Create(ctx, &domain.Freet{
			ID:        uuid.New(),
			AuthorID:  userID,
			Content:   normalized,
			CreatedAt: s.clock().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create freet: %w", err)
		}

		if _, err := s.cooldowns.Create(ctx, f.ID); err != nil {
			return fmt.Errorf("create freet cooldown: %w", err)
		}

		created = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "freet created",
		slog.String("user_id", userID.String()),
		slog.String("freet_id", created.ID.String()),
	)

	return created, nil
}

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

// Create attaches a reflection written by the caller to an existing freet.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reflection, error) {
	ref, err := s.create(ctx, input)
	metrics.ReflectionOps.WithLabelValues("create", metrics.Outcome(err)).Inc()
	return ref, err
}

func (s *Service) create(ctx context.Context, input CreateInput) (*domain.Reflection, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	content, err := domain.NormalizeContent(input.Content, s.maxLen)
	if err != nil {
		return nil, err
	}

	if _, err := s.freets.GetByID(ctx, input.FreetID); err != nil {
		return nil, fmt.Errorf("get freet: %w", err)
	}

	now := s.now()
	ref, err := s.reflections.Create(ctx, &domain.Reflection{
		ID:        uuid.New(),
		FreetID:   input.FreetID,
		Owner:     userID,
		Content:   content,
		Public:    input.Public,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create reflection: %w", err)
	}

	s.log.InfoContext(ctx, "reflection created",
		slog.String("user_id", userID.String()),
		slog.String("reflection_id", ref.ID.String()),
		slog.String("freet_id", ref.FreetID.String()),
		slog.Bool("public", ref.Public),
	)

	return ref, nil
}

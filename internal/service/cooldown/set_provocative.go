package cooldown

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// SetProvocative sets the provocative flag of a freet's cooldown record.
// Any authenticated user may change it.
func (s *Service) SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool) (*domain.CooldownRecord, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.cooldowns.SetProvocative(ctx, freetID, provocative, s.clock().UTC())
	if err != nil {
		return nil, fmt.Errorf("set provocative: %w", err)
	}

	s.log.InfoContext(ctx, "cooldown updated",
		slog.String("user_id", userID.String()),
		slog.String("freet_id", freetID.String()),
		slog.Bool("provocative", provocative),
	)

	return rec, nil
}

package credit

import (
	"context"
	"fmt"
	"log/slog"
)

// Backfill creates zero records for users that lack one and returns how
// many were created.
func (s *Service) Backfill(ctx context.Context) (int, error) {
	n, err := s.credits.Backfill(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("backfill credits: %w", err)
	}

	s.log.InfoContext(ctx, "credit backfill finished", slog.Int("created", n))
	return n, nil
}

package credit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes the record of owner. A missing record is not an error.
func (s *Service) Delete(ctx context.Context, owner uuid.UUID) error {
	deleted, err := s.credits.DeleteByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "credit record deleted", slog.String("owner_id", owner.String()))
	}
	return nil
}

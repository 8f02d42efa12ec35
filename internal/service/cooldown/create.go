package cooldown

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Create attaches a non-provocative record to a freet. Runs in the caller's
// transaction when one is open.
func (s *Service) Create(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	if freetID == uuid.Nil {
		return nil, domain.NewValidationError("freet_id", "required")
	}

	rec, err := s.cooldowns.Create(ctx, domain.NewCooldownRecord(freetID, s.clock().UTC()))
	if err != nil {
		return nil, fmt.Errorf("create cooldown: %w", err)
	}
	return rec, nil
}

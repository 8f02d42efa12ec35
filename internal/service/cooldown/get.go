package cooldown

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Get returns the cooldown record of a freet. No authentication required.
func (s *Service) Get(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	rec, err := s.cooldowns.GetByFreet(ctx, freetID)
	if err != nil {
		return nil, fmt.Errorf("get cooldown: %w", err)
	}
	return rec, nil
}

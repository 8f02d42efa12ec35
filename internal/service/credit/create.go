package credit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Create inserts a zero-score record for owner. Fails with
// domain.ErrAlreadyExists when owner already has one.
func (s *Service) Create(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error) {
	if owner == uuid.Nil {
		return nil, domain.NewValidationError("owner", "required")
	}

	rec, err := s.credits.Create(ctx, domain.NewCreditRecord(owner, s.now()))
	if err != nil {
		return nil, fmt.Errorf("create credit: %w", err)
	}

	s.log.InfoContext(ctx, "credit record created",
		slog.String("owner_id", owner.String()),
		slog.String("credit_id", rec.ID.String()),
	)

	return rec, nil
}

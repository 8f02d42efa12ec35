package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Get returns the credit record of owner.
func (s *Service) Get(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error) {
	rec, err := s.credits.GetByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get credit: %w", err)
	}
	return rec, nil
}

// GetMine returns the credit record of the authenticated caller.
func (s *Service) GetMine(ctx context.Context) (*domain.CreditRecord, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.Get(ctx, userID)
}

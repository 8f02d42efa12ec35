package reflection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// ListForUser returns the reflections written by userID. Private
// reflections are only listed for their author; anyone else asking for
// them gets domain.ErrForbidden.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Reflection, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}
	if !publicOnly {
		caller, ok := ctxutil.IdentityFromCtx(ctx)
		if !ok {
			return nil, domain.ErrUnauthorized
		}
		if caller != userID {
			return nil, domain.ErrForbidden
		}
	}

	refs, err := s.reflections.ListByOwner(ctx, userID, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}
	return refs, nil
}

// ListByFreet returns the reflections on freetID the caller may see.
func (s *Service) ListByFreet(ctx context.Context, freetID uuid.UUID) ([]domain.Reflection, error) {
	if _, err := s.freets.GetByID(ctx, freetID); err != nil {
		return nil, fmt.Errorf("get freet: %w", err)
	}

	refs, err := s.reflections.ListByFreet(ctx, freetID)
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}

	caller, _ := ctxutil.IdentityFromCtx(ctx)
	visible := refs[:0]
	for _, r := range refs {
		if r.VisibleTo(caller) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

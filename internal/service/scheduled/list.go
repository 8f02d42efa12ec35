package scheduled

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Get returns a single item by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ScheduledItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scheduled freet: %w", err)
	}
	return item, nil
}

// ListAll returns every scheduled item ordered by publish date.
func (s *Service) ListAll(ctx context.Context) ([]domain.ScheduledItem, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scheduled freets: %w", err)
	}
	return items, nil
}

// ListByOwner returns the items of owner ordered by publish date.
func (s *Service) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.ScheduledItem, error) {
	items, err := s.items.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list scheduled freets: %w", err)
	}
	return items, nil
}

// ListByUsername resolves username and returns that user's items.
// Unknown usernames yield domain.ErrNotFound.
func (s *Service) ListByUsername(ctx context.Context, username string) ([]domain.ScheduledItem, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}
	return s.ListByOwner(ctx, u.ID)
}

// ListDue returns items whose publish date is at or before now.
func (s *Service) ListDue(ctx context.Context) ([]domain.ScheduledItem, error) {
	items, err := s.items.ListDue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list due scheduled freets: %w", err)
	}
	return items, nil
}

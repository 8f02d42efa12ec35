package freet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Get returns a freet by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Freet, error) {
	f, err := s.freets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get freet: %w", err)
	}
	return f, nil
}

// ListByAuthor returns the author's freets, newest first.
func (s *Service) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Freet, error) {
	list, err := s.freets.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list freets: %w", err)
	}
	return list, nil
}

// ListByUsername resolves username and returns that user's freets.
func (s *Service) ListByUsername(ctx context.Context, username string) ([]domain.Freet, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}
	return s.ListByAuthor(ctx, u.ID)
}

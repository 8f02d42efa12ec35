package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// ValidateToken resolves a session token to the user it belongs to.
// Tokens of deleted accounts are rejected with ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}

	return userID, nil
}

// ResolveUsername returns the ID of the user with the given username.
func (s *Service) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve username: %w", err)
	}
	return user.ID, nil
}

// GetUser returns a user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// UpdateProfile changes the caller's username, password or both. Returns
// ErrAlreadyExists if the new username is taken.
func (s *Service) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		input.Username = &trimmed
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var hash string
	if input.Password != nil {
		b, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("auth.UpdateProfile hash password: %w", err)
		}
		hash = string(b)
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		next := *current
		if input.Username != nil {
			next.Username = *input.Username
		}
		if hash != "" {
			next.PasswordHash = hash
		}
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.users.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("username", updated.Username),
		slog.Bool("password_changed", hash != ""))

	return updated, nil
}

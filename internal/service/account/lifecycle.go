package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// OnAccountCreated creates the user's credit record. Callers run it in the
// same transaction as the user insert.
func (s *Service) OnAccountCreated(ctx context.Context, userID uuid.UUID) (*domain.CreditRecord, error) {
	rec, err := s.credits.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("on account created: %w", err)
	}
	return rec, nil
}

// OnAccountDeleted removes the user and everything the user owns in one
// transaction: credit record, scheduled freets, reflections, freets
// (cooldowns and reflections on them cascade) and finally the user row.
func (s *Service) OnAccountDeleted(ctx context.Context, userID uuid.UUID) error {
	var scheduledN, reflectionsN, freetsN int

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.credits.Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete credit: %w", err)
		}

		n, err := s.scheduled.DeleteByOwner(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete scheduled freets: %w", err)
		}
		scheduledN = n

		n, err = s.reflections.DeleteByOwner(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete reflections: %w", err)
		}
		reflectionsN = n

		n, err = s.freets.DeleteByAuthor(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete freets: %w", err)
		}
		freetsN = n

		if err := s.users.Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("on account deleted: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()),
		slog.Int("scheduled_freets", scheduledN),
		slog.Int("reflections", reflectionsN),
		slog.Int("freets", freetsN),
	)

	return nil
}

// DeleteMe tears down the caller's account.
func (s *Service) DeleteMe(ctx context.Context) error {
	userID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.OnAccountDeleted(ctx, userID)
}

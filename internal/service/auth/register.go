package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// Register creates a new user and the user's credit record in one
// transaction. Returns ErrAlreadyExists if the username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var (
		createdUser *domain.User
		credit      *domain.CreditRecord
	)

	// Username uniqueness is enforced by the DB constraint.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		rec, err := s.accounts.OnAccountCreated(txCtx, user.ID)
		if err != nil {
			return err
		}

		createdUser = user
		credit = rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.issueToken(createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()),
		slog.String("username", createdUser.Username))

	return &AuthResult{AccessToken: token, User: createdUser, Credit: credit}, nil
}

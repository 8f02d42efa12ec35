package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/config"
	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

// accountHooks is notified when an account is created so per-user state can
// be set up in the same transaction.
type accountHooks interface {
	OnAccountCreated(ctx context.Context, userID uuid.UUID) (*domain.CreditRecord, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements registration, login and identity resolution.
type Service struct {
	log      *slog.Logger
	users    userRepo
	accounts accountHooks
	tx       txManager
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	accounts accountHooks,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		accounts: accounts,
		tx:       tx,
		jwt:      jwt,
		cfg:      cfg,
	}
}

func (s *Service) issueToken(user *domain.User) (string, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

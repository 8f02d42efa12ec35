// Package account keeps per-user state consistent across the account
// lifecycle: every user gets exactly one credit record on registration and
// everything the user owns is removed with the account.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

type creditLedger interface {
	Create(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error)
	Delete(ctx context.Context, owner uuid.UUID) error
}

type scheduledRepo interface {
	DeleteByOwner(ctx context.Context, owner uuid.UUID) (int, error)
}

type reflectionStore interface {
	DeleteByOwner(ctx context.Context, owner uuid.UUID) (int, error)
}

type freetStore interface {
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

type userRepo interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates account creation and teardown.
type Service struct {
	credits     creditLedger
	scheduled   scheduledRepo
	reflections reflectionStore
	freets      freetStore
	users       userRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new account coordinator.
func NewService(
	log *slog.Logger,
	credits creditLedger,
	scheduled scheduledRepo,
	reflections reflectionStore,
	freets freetStore,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		credits:     credits,
		scheduled:   scheduled,
		reflections: reflections,
		freets:      freets,
		users:       users,
		tx:          tx,
		log:         log.With("service", "account"),
	}
}

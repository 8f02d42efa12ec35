package credit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/metrics"
	"github.com/heartmarshall/fritter-backend/pkg/ctxutil"
)

// Exchange gives one credit from giver to receiver: the receiver's score
// goes up by one and the receiver is appended to the giver's credited users.
// Exchanges on the same pair are serialized by the pair lease and by row
// locks taken in ascending owner order.
func (s *Service) Exchange(ctx context.Context, giver, receiver uuid.UUID) (*ExchangeResult, error) {
	res, err := s.exchange(ctx, giver, receiver)
	metrics.CreditExchanges.WithLabelValues(metrics.Outcome(err)).Inc()
	return res, err
}

// ExchangeByUsername gives one credit from the caller to the user named in
// input.
func (s *Service) ExchangeByUsername(ctx context.Context, input ExchangeInput) (*ExchangeResult, error) {
	giver, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	other, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("resolve receiver: %w", err)
	}

	return s.Exchange(ctx, giver, other.ID)
}

func (s *Service) exchange(ctx context.Context, giver, receiver uuid.UUID) (*ExchangeResult, error) {
	if giver == uuid.Nil || receiver == uuid.Nil {
		return nil, domain.NewValidationError("user", "required")
	}
	if giver == receiver {
		return nil, domain.ErrSelfReference
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	unlock, err := s.locker.LockPair(lockCtx, giver, receiver)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("acquire pair lock: %w", err)
	}
	defer unlock()

	var result ExchangeResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		recs, err := s.credits.LockByOwners(ctx, giver, receiver)
		if err != nil {
			return fmt.Errorf("lock credits: %w", err)
		}

		g, r, err := pick(recs, giver, receiver)
		if err != nil {
			return err
		}

		domain.ApplyExchange(&g, &r, s.now())

		if err := s.credits.Update(ctx, r); err != nil {
			return fmt.Errorf("update receiver credit: %w", err)
		}
		if err := s.credits.Update(ctx, g); err != nil {
			return fmt.Errorf("update giver credit: %w", err)
		}

		result = ExchangeResult{Giver: g, Receiver: r}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "credit exchanged",
		slog.String("giver_id", giver.String()),
		slog.String("receiver_id", receiver.String()),
		slog.Int64("receiver_score", result.Receiver.Score),
	)

	return &result, nil
}

func pick(recs []domain.CreditRecord, giver, receiver uuid.UUID) (g, r domain.CreditRecord, err error) {
	var foundG, foundR bool
	for _, rec := range recs {
		switch rec.Owner {
		case giver:
			g, foundG = rec, true
		case receiver:
			r, foundR = rec, true
		}
	}
	if !foundG {
		return g, r, fmt.Errorf("credit for %s: %w", giver, domain.ErrNotFound)
	}
	if !foundR {
		return g, r, fmt.Errorf("credit for %s: %w", receiver, domain.ErrNotFound)
	}
	return g, r, nil
}

// Package cooldown implements the cooldown record repository using PostgreSQL.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fritter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fritter-backend/internal/domain"
)

const table = "cooldowns"

var columns = []string{"id", "freet_id", "provocative", "updated_at"}

const returning = "RETURNING id, freet_id, provocative, updated_at"

// Repo provides cooldown record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new cooldown repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByFreet returns the cooldown record of a freet.
func (r *Repo) GetByFreet(ctx context.Context, freetID uuid.UUID) (*domain.CooldownRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"freet_id": freetID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cooldown query: %w", err)
	}

	return r.one(ctx, freetID, query, args)
}

// Create inserts a cooldown record. Returns domain.ErrAlreadyExists if the
// freet already has one and domain.ErrNotFound if the freet does not exist.
func (r *Repo) Create(ctx context.Context, rec domain.CooldownRecord) (*domain.CooldownRecord, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.FreetID, rec.Provocative, rec.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cooldown insert: %w", err)
	}

	return r.one(ctx, rec.FreetID, query, args)
}

// SetProvocative updates the flag of a freet's cooldown record and returns
// the updated record. Returns domain.ErrNotFound when there is no record.
func (r *Repo) SetProvocative(ctx context.Context, freetID uuid.UUID, provocative bool, now time.Time) (*domain.CooldownRecord, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("provocative", provocative).
		Set("updated_at", now).
		Where(squirrel.Eq{"freet_id": freetID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cooldown update: %w", err)
	}

	return r.one(ctx, freetID, query, args)
}

func (r *Repo) one(ctx context.Context, freetID uuid.UUID, query string, args []any) (*domain.CooldownRecord, error) {
	var row cooldownRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "cooldown", freetID)
	}

	rec := row.toDomain()
	return &rec, nil
}

type cooldownRow struct {
	ID          uuid.UUID `db:"id"`
	FreetID     uuid.UUID `db:"freet_id"`
	Provocative bool      `db:"provocative"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row cooldownRow) toDomain() domain.CooldownRecord {
	return domain.CooldownRecord{
		ID:          row.ID,
		FreetID:     row.FreetID,
		Provocative: row.Provocative,
		UpdatedAt:   row.UpdatedAt,
	}
}

// Package reflection implements the Reflection repository using PostgreSQL.
// Rows cascade with both their freet and their owner.
package reflection

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

const table = "reflections"

var columns = []string{"id", "freet_id", "owner_id", "content", "public", "created_at", "updated_at"}

const returning = "RETURNING id, freet_id, owner_id, content, public, created_at, updated_at"

// Repo provides reflection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reflection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a reflection by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reflection, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reflection, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, suffix string) (*domain.Reflection, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reflection query: %w", err)
	}

	var row reflectionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "reflection", id)
	}

	ref := row.toDomain()
	return &ref, nil
}

// ListByOwner returns owner's reflections, newest first. With publicOnly
// set, private reflections are left out.
func (r *Repo) ListByOwner(ctx context.Context, owner uuid.UUID, publicOnly bool) ([]domain.Reflection, error) {
	where := squirrel.And{squirrel.Eq{"owner_id": owner}}
	if publicOnly {
		where = append(where, squirrel.Eq{"public": true})
	}
	return r.list(ctx, where)
}

// ListByFreet returns every reflection attached to freetID, newest first.
func (r *Repo) ListByFreet(ctx context.Context, freetID uuid.UUID) ([]domain.Reflection, error) {
	return r.list(ctx, squirrel.Eq{"freet_id": freetID})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Reflection, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reflection list: %w", err)
	}

	var rows []reflectionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}

	out := make([]domain.Reflection, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a reflection. A missing freet or owner surfaces as
// domain.ErrNotFound through the foreign keys.
func (r *Repo) Create(ctx context.Context, ref *domain.Reflection) (*domain.Reflection, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(ref.ID, ref.FreetID, ref.Owner, ref.Content, ref.Public, ref.CreatedAt, ref.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reflection insert: %w", err)
	}

	return r.writeOne(ctx, ref.ID, query, args)
}

// Update persists content, visibility and updated_at of ref.
func (r *Repo) Update(ctx context.Context, ref *domain.Reflection) (*domain.Reflection, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("content", ref.Content).
		Set("public", ref.Public).
		Set("updated_at", ref.UpdatedAt).
		Where(squirrel.Eq{"id": ref.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reflection update: %w", err)
	}

	return r.writeOne(ctx, ref.ID, query, args)
}

func (r *Repo) writeOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Reflection, error) {
	var row reflectionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "reflection", id)
	}

	ref := row.toDomain()
	return &ref, nil
}

// Delete removes a reflection. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reflection delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "reflection", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reflection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByOwner removes every reflection written by owner. Idempotent.
func (r *Repo) DeleteByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": owner}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reflection delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete reflections of %s: %w", owner, err)
	}
	return int(tag.RowsAffected()), nil
}

type reflectionRow struct {
	ID        uuid.UUID `db:"id"`
	FreetID   uuid.UUID `db:"freet_id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Content   string    `db:"content"`
	Public    bool      `db:"public"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row reflectionRow) toDomain() domain.Reflection {
	return domain.Reflection{
		ID:        row.ID,
		FreetID:   row.FreetID,
		Owner:     row.OwnerID,
		Content:   row.Content,
		Public:    row.Public,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// Package scheduled implements the scheduled freet repository using PostgreSQL.
package scheduled

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

const table = "scheduled_freets"

var columns = []string{"id", "owner_id", "content", "publish_at", "created_at", "updated_at"}

const returning = "RETURNING id, owner_id, content, publish_at, created_at, updated_at"

// Repo provides scheduled freet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new scheduled freet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a scheduled freet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledItem, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ScheduledItem, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, suffix string) (*domain.ScheduledItem, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scheduled freet query: %w", err)
	}

	var row scheduledRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "scheduled_freet", id)
	}

	item := row.toDomain()
	return &item, nil
}

// ListAll returns every scheduled freet ordered by publish time.
func (r *Repo) ListAll(ctx context.Context) ([]domain.ScheduledItem, error) {
	return r.list(ctx, nil)
}

// ListByOwner returns the scheduled freets of owner ordered by publish time.
func (r *Repo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.ScheduledItem, error) {
	return r.list(ctx, squirrel.Eq{"owner_id": owner})
}

// ListDue returns the scheduled freets whose publish time is at or before now.
func (r *Repo) ListDue(ctx context.Context, now time.Time) ([]domain.ScheduledItem, error) {
	return r.list(ctx, squirrel.LtOrEq{"publish_at": now})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.ScheduledItem, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("publish_at ASC", "id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scheduled freet list: %w", err)
	}

	var rows []scheduledRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scheduled freets: %w", err)
	}

	out := make([]domain.ScheduledItem, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a scheduled freet.
func (r *Repo) Create(ctx context.Context, item *domain.ScheduledItem) (*domain.ScheduledItem, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(item.ID, item.Owner, item.Content, item.PublishAt, item.CreatedAt, item.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scheduled freet insert: %w", err)
	}

	return r.writeOne(ctx, item.ID, query, args)
}

// Update persists content, publish time and updated_at of item.
// Returns domain.ErrNotFound if the item no longer exists.
func (r *Repo) Update(ctx context.Context, item *domain.ScheduledItem) (*domain.ScheduledItem, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("content", item.Content).
		Set("publish_at", item.PublishAt).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scheduled freet update: %w", err)
	}

	return r.writeOne(ctx, item.ID, query, args)
}

func (r *Repo) writeOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.ScheduledItem, error) {
	var row scheduledRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "scheduled_freet", id)
	}

	item := row.toDomain()
	return &item, nil
}

// Delete removes a scheduled freet. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build scheduled freet delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "scheduled_freet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("scheduled_freet %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByOwner removes all scheduled freets of owner. Idempotent.
// Returns the number of deleted items.
func (r *Repo) DeleteByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": owner}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build scheduled freet delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete scheduled freets of %s: %w", owner, err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type scheduledRow struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Content   string    `db:"content"`
	PublishAt time.Time `db:"publish_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row scheduledRow) toDomain() domain.ScheduledItem {
	return domain.ScheduledItem{
		ID:        row.ID,
		Owner:     row.OwnerID,
		Content:   row.Content,
		PublishAt: row.PublishAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

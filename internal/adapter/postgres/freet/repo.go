// Package freet implements the Freet repository using PostgreSQL.
// Cooldown rows reference freets with ON DELETE CASCADE, so deleting a
// freet here also removes its cooldown record.
package freet

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

const table = "freets"

var columns = []string{"id", "author_id", "content", "created_at"}

// Repo provides freet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new freet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a freet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Freet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build freet query: %w", err)
	}

	var row freetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "freet", id)
	}

	f := row.toDomain()
	return &f, nil
}

// ListByAuthor returns an author's freets, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Freet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"author_id": authorID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build freet list: %w", err)
	}

	var rows []freetRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list freets: %w", err)
	}

	out := make([]domain.Freet, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a freet. Returns domain.ErrNotFound if the author does not exist.
func (r *Repo) Create(ctx context.Context, f *domain.Freet) (*domain.Freet, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(f.ID, f.AuthorID, f.Content, f.CreatedAt).
		Suffix("RETURNING id, author_id, content, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build freet insert: %w", err)
	}

	var row freetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "freet", f.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Delete removes a freet. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build freet delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "freet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("freet %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByAuthor removes all freets of an author. Idempotent.
// Returns the number of deleted freets.
func (r *Repo) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build freet delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete freets of %s: %w", authorID, err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type freetRow struct {
	ID        uuid.UUID `db:"id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (row freetRow) toDomain() domain.Freet {
	return domain.Freet{
		ID:        row.ID,
		AuthorID:  row.AuthorID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}

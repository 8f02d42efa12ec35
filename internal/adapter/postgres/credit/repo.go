// Package credit implements the credit ledger repository using PostgreSQL.
// Each user owns exactly one row; exchanges lock both rows FOR UPDATE in
// owner order before writing.
package credit

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

const table = "credits"

var columns = []string{"id", "owner_id", "score", "credited_users", "created_at", "updated_at"}

// Repo provides credit record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new credit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByOwner returns the credit record of owner.
// Returns domain.ErrNotFound if the user has no record.
func (r *Repo) GetByOwner(ctx context.Context, owner uuid.UUID) (*domain.CreditRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": owner}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credit query: %w", err)
	}

	var row creditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "credit", owner)
	}

	rec := row.toDomain()
	return &rec, nil
}

// LockByOwners selects the records of owners with SELECT ... FOR UPDATE,
// locking rows in ascending owner_id order so concurrent callers on the same
// set cannot deadlock. Must run inside a transaction. Owners without a
// record are simply absent from the result.
func (r *Repo) LockByOwners(ctx context.Context, owners ...uuid.UUID) ([]domain.CreditRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": owners}).
		OrderBy("owner_id ASC").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credit lock query: %w", err)
	}

	var rows []creditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "credit", owners)
	}

	out := make([]domain.CreditRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a credit record. Returns domain.ErrAlreadyExists when the
// owner already has one and domain.ErrNotFound when the owner does not exist.
func (r *Repo) Create(ctx context.Context, rec domain.CreditRecord) (*domain.CreditRecord, error) {
	credited := rec.CreditedUsers
	if credited == nil {
		credited = []uuid.UUID{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.Owner, rec.Score, credited, rec.CreatedAt, rec.UpdatedAt).
		Suffix("RETURNING id, owner_id, score, credited_users, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credit insert: %w", err)
	}

	var row creditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "credit", rec.Owner)
	}

	created := row.toDomain()
	return &created, nil
}

// Update persists score, credited users and updated_at of rec.
// Returns domain.ErrNotFound if the record no longer exists.
func (r *Repo) Update(ctx context.Context, rec domain.CreditRecord) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("score", rec.Score).
		Set("credited_users", rec.CreditedUsers).
		Set("updated_at", rec.UpdatedAt).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build credit update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "credit", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credit %s: %w", rec.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByOwner removes the record of owner. Idempotent: a missing record
// is not an error. Reports whether a row was deleted.
func (r *Repo) DeleteByOwner(ctx context.Context, owner uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": owner}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build credit delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "credit", owner)
	}

	return tag.RowsAffected() > 0, nil
}

// backfillSQL creates a zero record for every user that lacks one.
const backfillSQL = `
INSERT INTO credits (id, owner_id, score, credited_users, created_at, updated_at)
SELECT gen_random_uuid(), u.id, 0, '{}', $1, $1
FROM users u
WHERE NOT EXISTS (SELECT 1 FROM credits c WHERE c.owner_id = u.id)
ON CONFLICT (owner_id) DO NOTHING`

// Backfill creates missing credit records and returns how many were created.
func (r *Repo) Backfill(ctx context.Context, now time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, backfillSQL, now)
	if err != nil {
		return 0, fmt.Errorf("backfill credits: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type creditRow struct {
	ID            uuid.UUID   `db:"id"`
	OwnerID       uuid.UUID   `db:"owner_id"`
	Score         int64       `db:"score"`
	CreditedUsers []uuid.UUID `db:"credited_users"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func (row creditRow) toDomain() domain.CreditRecord {
	credited := row.CreditedUsers
	if credited == nil {
		credited = []uuid.UUID{}
	}
	return domain.CreditRecord{
		ID:            row.ID,
		Owner:         row.OwnerID,
		Score:         row.Score,
		CreditedUsers: credited,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

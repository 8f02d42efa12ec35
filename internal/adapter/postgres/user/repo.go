// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "username", "password_hash", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. Returns domain.ErrAlreadyExists on a taken username.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING id, username, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := row.toDomain()
	return &created, nil
}

// Update persists username, password hash and updated_at of u. Returns
// domain.ErrAlreadyExists if the new username is taken.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("username", u.Username).
		Set("password_hash", u.PasswordHash).
		Set("updated_at", u.UpdatedAt).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING id, username, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a user. Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

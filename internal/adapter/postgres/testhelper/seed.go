package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user_" + uniqueSuffix(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCredit inserts a credit record for owner with the given score.
func SeedCredit(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, score int64) domain.CreditRecord {
	t.Helper()

	rec := domain.NewCreditRecord(owner, time.Now().UTC().Truncate(time.Microsecond))
	rec.Score = score

	_, err := pool.Exec(context.Background(),
		`INSERT INTO credits (id, owner_id, score, credited_users, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Owner, rec.Score, rec.CreditedUsers, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCredit: %v", err)
	}

	return rec
}

// SeedFreet inserts a freet by author together with its cooldown record.
func SeedFreet(t *testing.T, pool *pgxpool.Pool, author uuid.UUID) domain.Freet {
	t.Helper()
	ctx := context.Background()

	freet := domain.Freet{
		ID:        uuid.New(),
		AuthorID:  author,
		Content:   "freet " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO freets (id, author_id, content, created_at) VALUES ($1, $2, $3, $4)`,
		freet.ID, freet.AuthorID, freet.Content, freet.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFreet insert freet: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO cooldowns (id, freet_id, provocative, updated_at) VALUES ($1, $2, false, $3)`,
		uuid.New(), freet.ID, freet.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFreet insert cooldown: %v", err)
	}

	return freet
}

// SeedScheduled inserts a scheduled freet for owner publishing at publishAt.
func SeedScheduled(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, publishAt time.Time) domain.ScheduledItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.ScheduledItem{
		ID:        uuid.New(),
		Owner:     owner,
		Content:   "later " + uniqueSuffix(),
		PublishAt: publishAt.UTC().Truncate(time.Microsecond),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO scheduled_freets (id, owner_id, content, publish_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Owner, item.Content, item.PublishAt, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScheduled: %v", err)
	}

	return item
}

// SeedReflection inserts a reflection by owner on freetID.
func SeedReflection(t *testing.T, pool *pgxpool.Pool, freetID, owner uuid.UUID, public bool) domain.Reflection {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ref := domain.Reflection{
		ID:        uuid.New(),
		FreetID:   freetID,
		Owner:     owner,
		Content:   "thought " + uniqueSuffix(),
		Public:    public,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reflections (id, freet_id, owner_id, content, public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ref.ID, ref.FreetID, ref.Owner, ref.Content, ref.Public, ref.CreatedAt, ref.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReflection: %v", err)
	}

	return ref
}

// RowCount returns the number of rows in table matching where (may be empty).
func RowCount(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: RowCount %s: %v", table, err)
	}
	return n
}

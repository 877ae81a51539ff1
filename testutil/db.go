// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so unit tests can run without Postgres or redis.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// NewPool opens a *pgxpool.Pool connected to TEST_DATABASE_URL.
// The test is skipped if the variable is not set. The pool is closed when the
// test and all its subtests finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireEnv(t, "TEST_DATABASE_URL")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction on a fresh pool and rolls it back when the test
// finishes, so anything the test writes disappears without cleanup SQL.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := NewPool(t)

	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// NewSQLDB opens a *sql.DB connected to TEST_DATABASE_URL using the pgx
// database/sql driver, for goose migrations in integration tests.
// The connection is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireEnv(t, "TEST_DATABASE_URL")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// InsertDestination writes d into the destinations table through tx and
// returns it with the database-generated ID filled in. Catalog management is
// not part of the API, so tests seed rows directly.
func InsertDestination(t *testing.T, tx pgx.Tx, d domain.Destination) domain.Destination {
	t.Helper()

	const q = `
		INSERT INTO destinations (
			name, country, description,
			min_budget, max_budget, min_duration, max_duration,
			interests, rating, reviews, image, highlights, best_time)
		VALUES (
			@name, @country, @description,
			@min_budget, @max_budget, @min_duration, @max_duration,
			@interests, @rating, @reviews, @image, @highlights, @best_time)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(context.Background(), q, pgx.NamedArgs{
		"name":         d.Name,
		"country":      d.Country,
		"description":  d.Description,
		"min_budget":   d.MinBudget,
		"max_budget":   d.MaxBudget,
		"min_duration": d.MinDuration,
		"max_duration": d.MaxDuration,
		"interests":    d.Interests.String(),
		"rating":       d.Rating,
		"reviews":      d.Reviews,
		"image":        d.Image,
		"highlights":   strings.Join(d.Highlights, ","),
		"best_time":    d.BestTime,
	}).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertDestination: %v", err)
	}
	d.ID = id
	return d
}

// requireEnv returns the named environment variable, skipping the test if it
// is not set.
func requireEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}

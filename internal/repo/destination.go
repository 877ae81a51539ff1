// Package repo contains the catalog access logic for the travel recommendation API.
// DestinationRepo is the catalog provider the service layer reads from; this
// file holds the interface and its Postgres implementation. No ranking logic
// lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DestinationRepo defines the read operations on the destination catalog.
type DestinationRepo interface {
	// List returns the whole catalog ordered by name. This is the snapshot the
	// recommendation engine ranks.
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID retrieves a single destination by its UUID primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// ListPaged returns one page of destinations matching filter, ordered by
	// name, together with the total number of matches.
	ListPaged(ctx context.Context, filter domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error)
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `
	id, name, country, description,
	min_budget, max_budget, min_duration, max_duration,
	interests, rating, reviews, image, highlights, best_time`

// destinationFilterClause matches rows against a DestinationFilter.
// An empty @country or @interest disables that condition.
const destinationFilterClause = `
	WHERE (@country = '' OR lower(country) = lower(@country))
	  AND (@interest = '' OR EXISTS (
	        SELECT 1 FROM unnest(string_to_array(interests, ',')) AS tag
	        WHERE btrim(tag) = @interest))`

// List returns every destination ordered by name.
func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	q := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	dests, err := collectDestinations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	return dests, nil
}

// GetByID retrieves a destination by primary key.
func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	q := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of matching destinations and the total match count.
func (r *pgDestinationRepo) ListPaged(ctx context.Context, filter domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
	args := pgx.NamedArgs{
		"country":  strings.TrimSpace(filter.Country),
		"interest": strings.TrimSpace(filter.Interest),
		"limit":    p.Limit,
		"offset":   p.Offset(),
	}

	var total int64
	countQ := `SELECT count(*) FROM destinations` + destinationFilterClause
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + destinationColumns + ` FROM destinations` + destinationFilterClause + `
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	dests, err := collectDestinations(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.ListPaged: %w", err)
	}
	return dests, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanDestination
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// collectDestinations drains rows into a non-nil slice.
func collectDestinations(rows pgx.Rows) ([]domain.Destination, error) {
	dests := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return dests, nil
}

// scanDestination maps a single database row into a domain.Destination.
// The interests and highlights columns hold comma-separated lists.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d          domain.Destination
		id         pgtype.UUID
		interests  string
		highlights string
	)

	err := s.Scan(
		&id, &d.Name, &d.Country, &d.Description,
		&d.MinBudget, &d.MaxBudget, &d.MinDuration, &d.MaxDuration,
		&interests, &d.Rating, &d.Reviews, &d.Image, &highlights, &d.BestTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.Interests = domain.ParseInterests(interests)
	d.Highlights = splitCSV(highlights)
	return d, nil
}

// splitCSV splits a comma-separated column into trimmed, non-empty entries.
func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

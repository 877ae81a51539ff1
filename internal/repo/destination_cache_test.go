package repo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/internal/repo"
	"github.com/pkordes/travel-recommender/backend/testutil"
)

// mockDestinationRepo is a hand-written test double for repo.DestinationRepo.
// Each method is a function field; set only the ones your test needs.
type mockDestinationRepo struct {
	list      func(ctx context.Context) ([]domain.Destination, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	listPaged func(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error)
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) ListPaged(ctx context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
	return m.listPaged(ctx, f, p)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

// memStore is an in-memory repo.CacheStore. getErr/setErr force failures.
type memStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, repo.ErrCacheMiss
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogFixture() []domain.Destination {
	return []domain.Destination{
		{
			ID:          uuid.New(),
			Name:        "Bali",
			Country:     "Indonesia",
			MinBudget:   700,
			MaxBudget:   1400,
			MinDuration: 7,
			MaxDuration: 14,
			Interests:   domain.ParseInterests("beach,culture"),
			Highlights:  []string{"Temples", "Rice terraces"},
		},
	}
}

// countingRepo returns a repo whose List returns catalog and counts calls.
func countingRepo(catalog []domain.Destination, calls *int) *mockDestinationRepo {
	return &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) {
			*calls++
			return catalog, nil
		},
	}
}

func TestCachedDestinationRepo_List_MissThenHit(t *testing.T) {
	calls := 0
	store := newMemStore()
	r := repo.NewCachedDestinationRepo(countingRepo(catalogFixture(), &calls), store, 5*time.Minute, quietLogger())
	ctx := context.Background()

	first, err := r.List(ctx)
	require.NoError(t, err)
	second, err := r.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second List should be served from cache")
	assert.Equal(t, 5*time.Minute, store.ttls[repo.CatalogCacheKey])
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "Bali", second[0].Name)
	assert.True(t, second[0].Interests.Has("culture"))
	assert.Equal(t, []string{"Temples", "Rice terraces"}, second[0].Highlights)
}

func TestCachedDestinationRepo_List_HitsReturnIndependentSlices(t *testing.T) {
	calls := 0
	r := repo.NewCachedDestinationRepo(countingRepo(catalogFixture(), &calls), newMemStore(), time.Minute, quietLogger())
	ctx := context.Background()
	_, err := r.List(ctx)
	require.NoError(t, err)

	a, err := r.List(ctx)
	require.NoError(t, err)
	a[0].Name = "changed"
	a[0].Highlights[0] = "changed"

	b, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bali", b[0].Name)
	assert.Equal(t, "Temples", b[0].Highlights[0])
}

func TestCachedDestinationRepo_List_GetErrorFallsThrough(t *testing.T) {
	calls := 0
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	r := repo.NewCachedDestinationRepo(countingRepo(catalogFixture(), &calls), store, time.Minute, quietLogger())

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, calls)
}

func TestCachedDestinationRepo_List_SetErrorIsIgnored(t *testing.T) {
	calls := 0
	store := newMemStore()
	store.setErr = errors.New("read-only replica")
	r := repo.NewCachedDestinationRepo(countingRepo(catalogFixture(), &calls), store, time.Minute, quietLogger())

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCachedDestinationRepo_List_CorruptEntryIsReplaced(t *testing.T) {
	calls := 0
	store := newMemStore()
	store.data[repo.CatalogCacheKey] = []byte("{not json")
	r := repo.NewCachedDestinationRepo(countingRepo(catalogFixture(), &calls), store, time.Minute, quietLogger())

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, calls)
	assert.NotEqual(t, "{not json", string(store.data[repo.CatalogCacheKey]))
}

func TestCachedDestinationRepo_List_RepoErrorIsWrapped(t *testing.T) {
	dbErr := errors.New("db exploded")
	next := &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return nil, dbErr },
	}
	store := newMemStore()
	r := repo.NewCachedDestinationRepo(next, store, time.Minute, quietLogger())

	_, err := r.List(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, store.data, "failures must not be cached")
}

func TestCachedDestinationRepo_PassThrough(t *testing.T) {
	id := uuid.New()
	next := &mockDestinationRepo{
		getByID: func(_ context.Context, got uuid.UUID) (domain.Destination, error) {
			if got != id {
				return domain.Destination{}, domain.ErrNotFound
			}
			return domain.Destination{ID: id, Name: "Kyoto"}, nil
		},
		listPaged: func(_ context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
			return []domain.Destination{{Name: f.Country}}, int64(p.Limit), nil
		},
	}
	r := repo.NewCachedDestinationRepo(next, newMemStore(), time.Minute, quietLogger())
	ctx := context.Background()

	d, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", d.Name)

	_, err = r.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, total, err := r.ListPaged(ctx, domain.DestinationFilter{Country: "Japan"}, domain.PaginationParams{Page: 1, Limit: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, "Japan", page[0].Name)
}

// TestRedisStore_RoundTrip runs against a real redis when TEST_REDIS_URL is set.
func TestRedisStore_RoundTrip(t *testing.T) {
	client := testutil.NewRedisClient(t)
	store := repo.NewRedisStore(client)
	ctx := context.Background()
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, repo.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, key, []byte("hello"), time.Minute))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/internal/service"
)

func TestDestinationService_List(t *testing.T) {
	svc := service.NewDestinationService(catalogRepo(nil))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDestinationService_List_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := service.NewDestinationService(&mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return nil, boom },
	})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestDestinationService_ListPaged_TrimsFilter(t *testing.T) {
	var gotFilter domain.DestinationFilter
	var gotPage domain.PaginationParams
	svc := service.NewDestinationService(&mockDestinationRepo{
		listPaged: func(_ context.Context, f domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
			gotFilter, gotPage = f, p
			return catalog()[:1], 1, nil
		},
	})

	dests, total, err := svc.ListPaged(context.Background(),
		domain.DestinationFilter{Country: "  Indonesia ", Interest: " beach"},
		domain.PaginationParams{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Len(t, dests, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, domain.DestinationFilter{Country: "Indonesia", Interest: "beach"}, gotFilter)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, gotPage)
}

func TestDestinationService_ListPaged_DefaultsZeroPagination(t *testing.T) {
	var gotPage domain.PaginationParams
	svc := service.NewDestinationService(&mockDestinationRepo{
		listPaged: func(_ context.Context, _ domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
			gotPage = p
			return []domain.Destination{}, 0, nil
		},
	})

	_, _, err := svc.ListPaged(context.Background(), domain.DestinationFilter{}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotPage)
}

func TestDestinationService_GetByID_NotFound(t *testing.T) {
	svc := service.NewDestinationService(&mockDestinationRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Destination, error) {
			return domain.Destination{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_GetByID(t *testing.T) {
	want := catalog()[0]
	svc := service.NewDestinationService(&mockDestinationRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Destination, error) {
			require.Equal(t, want.ID, id)
			return want, nil
		},
	})

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, "Bali", got.Name)
}

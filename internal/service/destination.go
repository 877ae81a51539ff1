package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/internal/repo"
)

// DestinationService implements catalog browsing.
type DestinationService struct {
	repo repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided DestinationRepo.
func NewDestinationService(r repo.DestinationRepo) *DestinationService {
	return &DestinationService{repo: r}
}

// List returns the whole catalog.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	return dests, nil
}

// ListPaged returns one page of destinations matching filter and the total
// number of matches. Filter values are trimmed before they reach the repo.
func (s *DestinationService) ListPaged(ctx context.Context, filter domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
	filter.Country = strings.TrimSpace(filter.Country)
	filter.Interest = strings.TrimSpace(filter.Interest)
	if p.Page < 1 || p.Limit < 1 {
		p = domain.NewPaginationParams(&p.Page, &p.Limit)
	}

	dests, total, err := s.repo.ListPaged(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.DestinationService.ListPaged: %w", err)
	}
	return dests, total, nil
}

// GetByID returns a single destination by ID.
func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return d, nil
}

// Package service contains the business logic for the travel recommendation API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL and no ranking arithmetic live here: services depend on repo
// interfaces and hand validated requests to the recommend package.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/internal/metrics"
	"github.com/pkordes/travel-recommender/backend/internal/recommend"
	"github.com/pkordes/travel-recommender/backend/internal/repo"
	"github.com/pkordes/travel-recommender/backend/internal/validation"
)

// RecommendationService validates recommendation requests and ranks the
// current catalog snapshot against them.
type RecommendationService struct {
	catalog repo.DestinationRepo
}

// NewRecommendationService constructs a RecommendationService that reads the
// catalog from the provided DestinationRepo.
func NewRecommendationService(catalog repo.DestinationRepo) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

// Recommend returns up to req.Limit destinations ranked for req.
// An empty result is a valid answer. Invalid requests return an error
// wrapping domain.ErrValidation.
func (s *RecommendationService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("invalid").Inc()
		return domain.RecommendationResponse{}, fmt.Errorf("service.RecommendationService.Recommend: %w", err)
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return domain.RecommendationResponse{}, fmt.Errorf("service.RecommendationService.Recommend: %w", err)
	}

	ranking := recommend.Rank(req, catalog)
	observeRanking(ranking.Stats)

	recs := ranking.Recommendations
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return domain.RecommendationResponse{Recommendations: recs}, nil
}

// normalizeRequest trims the interest tags and checks every rule, returning
// a copy of req that is safe to rank.
func normalizeRequest(req domain.RecommendationRequest) (domain.RecommendationRequest, error) {
	if err := validation.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	interests := make([]string, len(req.Interests))
	for i, tag := range req.Interests {
		interests[i] = strings.TrimSpace(tag)
		if interests[i] == "" {
			return req, fmt.Errorf("%w: interests must not contain blank entries", domain.ErrValidation)
		}
	}
	req.Interests = interests
	req.Country = strings.TrimSpace(req.Country)

	if req.MinBudget != nil && req.MaxBudget != nil && *req.MinBudget > *req.MaxBudget {
		return req, fmt.Errorf("%w: minBudget must not exceed maxBudget", domain.ErrValidation)
	}
	if req.MinDuration != nil && req.MaxDuration != nil && *req.MinDuration > *req.MaxDuration {
		return req, fmt.Errorf("%w: minDuration must not exceed maxDuration", domain.ErrValidation)
	}
	return req, nil
}

func observeRanking(st recommend.Stats) {
	metrics.RecommendationCandidates.WithLabelValues("considered").Observe(float64(st.Considered))
	metrics.RecommendationCandidates.WithLabelValues("feasible").Observe(float64(st.Feasible))
	metrics.RecommendationCandidates.WithLabelValues("scored").Observe(float64(st.Scored))
	metrics.RecommendationCandidates.WithLabelValues("returned").Observe(float64(st.Returned))
	if st.DiversityApplied {
		metrics.RecommendationDiversityBonus.Inc()
	}

	outcome := "ok"
	if st.Returned == 0 {
		outcome = "empty"
	}
	metrics.RecommendationRequests.WithLabelValues(outcome).Inc()
}

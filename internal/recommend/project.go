package recommend

import (
	"math"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// offer is the concrete trip a destination can sell for this request.
type offer struct {
	price int
	days  int
}

// project collapses dest's stored ranges into one offer, or reports false when
// no stay length satisfies both dest and req, or when the shortest valid stay
// already costs more than the request's ceiling.
//
// The price is the destination's per-day rate (MinBudget / MinDuration) times
// the stay length, rounded to the nearest unit.
func project(req domain.RecommendationRequest, dest domain.Destination) (offer, bool) {
	minDur := dest.EffectiveMinDuration()
	dailyRate := float64(dest.MinBudget) / float64(minDur)

	target := req.Duration
	if target < 1 {
		target = minDur
	}
	if req.MinDuration != nil {
		target = max(target, *req.MinDuration)
	}
	validStart := max(target, minDur)

	validEnd := dest.MaxDuration
	if req.MaxDuration != nil {
		validEnd = min(validEnd, *req.MaxDuration)
	}
	if validStart > validEnd {
		return offer{}, false
	}

	cost := int(math.Round(dailyRate * float64(validStart)))
	if ceiling, ok := budgetCeiling(req); ok && cost > ceiling {
		return offer{}, false
	}
	return offer{price: cost, days: validStart}, true
}

// budgetCeiling is the most a projected offer may cost: the request's MaxBudget
// when given, otherwise its flat Budget. ok is false when neither is set.
func budgetCeiling(req domain.RecommendationRequest) (ceiling int, ok bool) {
	if req.MaxBudget != nil {
		return *req.MaxBudget, true
	}
	if req.Budget > 0 {
		return req.Budget, true
	}
	return 0, false
}

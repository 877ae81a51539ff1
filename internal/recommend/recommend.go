// Package recommend ranks catalog destinations for a single recommendation request.
//
// Rank runs four stages in order:
//
//  1. project: collapse each destination's price/duration range into one offer
//     and drop destinations that cannot be offered at all.
//  2. score: add up duration, country, budget and interest points and collect
//     a human-readable reason; drop candidates with no shared interest or a
//     non-positive score.
//  3. diversify: if one country fills more than half of the provisional top
//     results, give every other country's candidates a one-point bonus.
//  4. selectTop: re-sort and cut to the requested limit.
//
// Everything here is pure computation over the request and a catalog snapshot.
// The catalog is never written to, and nothing survives between calls, so Rank
// is safe to call from any number of goroutines sharing one snapshot.
package recommend

import (
	"strings"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// Stats describes how many destinations survived each stage of one Rank call.
type Stats struct {
	Considered       int
	Feasible         int
	Scored           int
	Returned         int
	DiversityApplied bool
}

// Ranking is the result of Rank.
type Ranking struct {
	Recommendations []domain.Recommendation
	Stats           Stats
}

// candidate is the per-request scoring record for one feasible destination.
type candidate struct {
	snapshot domain.Destination
	score    int
	reason   string
	country  string
}

// Rank scores catalog against req and returns at most req.EffectiveLimit()
// recommendations ordered by score descending. Ties keep catalog order.
// The request is assumed to be validated already.
func Rank(req domain.RecommendationRequest, catalog []domain.Destination) Ranking {
	limit := max(req.EffectiveLimit(), 0)
	priorities := interestPriorities(req.Interests)

	stats := Stats{Considered: len(catalog)}
	candidates := make([]candidate, 0, len(catalog))
	for _, dest := range catalog {
		offer, ok := project(req, dest)
		if !ok {
			continue
		}
		stats.Feasible++

		c, ok := score(req, priorities, dest, offer)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
	}
	stats.Scored = len(candidates)

	sortByScore(candidates)
	stats.DiversityApplied = diversify(candidates, limit)

	recs := selectTop(candidates, limit)
	stats.Returned = len(recs)
	return Ranking{Recommendations: recs, Stats: stats}
}

// Recommend is Rank without the stats.
func Recommend(req domain.RecommendationRequest, catalog []domain.Destination) domain.RecommendationResponse {
	return domain.RecommendationResponse{Recommendations: Rank(req, catalog).Recommendations}
}

// reasonBuilder accumulates short phrases into a single space-separated sentence.
type reasonBuilder struct {
	parts []string
}

func (b *reasonBuilder) add(phrase string) {
	b.parts = append(b.parts, phrase)
}

func (b *reasonBuilder) String() string {
	return strings.TrimSpace(strings.Join(b.parts, " "))
}

package recommend

import (
	"strings"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// selectTop re-sorts cs after the diversity pass and returns the first
// min(limit, len(cs)) entries as recommendations.
func selectTop(cs []candidate, limit int) []domain.Recommendation {
	sortByScore(cs)

	n := min(limit, len(cs))
	out := make([]domain.Recommendation, 0, n)
	for _, c := range cs[:n] {
		out = append(out, domain.Recommendation{
			Destination: c.snapshot,
			Reason:      strings.TrimSpace(c.reason),
			Score:       c.score,
		})
	}
	return out
}

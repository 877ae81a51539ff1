package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// The over-budget branch cannot be reached through Rank, because project
// already drops offers above the ceiling. It is exercised directly here.
func TestScore_OverBudget(t *testing.T) {
	maxBudget := 400
	req := domain.RecommendationRequest{
		Budget:    1000,
		Duration:  5,
		Interests: []string{"beach", "food"},
		MaxBudget: &maxBudget,
	}
	dest := domain.Destination{
		Country:     "Spain",
		MinBudget:   500,
		MinDuration: 5,
		MaxDuration: 5,
		Interests:   domain.NewInterestSet("beach", "food"),
	}

	c, ok := score(req, interestPriorities(req.Interests), dest, offer{price: 500, days: 5})

	require.True(t, ok)
	assert.Equal(t, 2-2+4, c.score)
	assert.Equal(t, "Fits your duration. Over budget. Matches 2 of your interests.", c.reason)
	assert.Equal(t, "Spain", c.country)
	assert.Equal(t, 500, c.snapshot.MaxBudget)
}

func TestScore_UsesOriginalMinDuration(t *testing.T) {
	req := domain.RecommendationRequest{Budget: 1000, Duration: 4, Interests: []string{"beach"}}
	dest := domain.Destination{
		MinBudget:   600,
		MinDuration: 6,
		MaxDuration: 10,
		Interests:   domain.NewInterestSet("beach"),
	}

	// The offer is already stretched to 6 days, but the duration check still
	// compares the request against the catalog minimum.
	c, ok := score(req, interestPriorities(req.Interests), dest, offer{price: 600, days: 6})

	require.True(t, ok)
	assert.Equal(t, -2+3+2, c.score)
	assert.Equal(t, "Not enough time. Fits your budget range. Matches 1 of your interests.", c.reason)
	assert.Equal(t, 6, c.snapshot.MinDuration)
}

func TestInterestPriorities(t *testing.T) {
	got := interestPriorities([]string{"beach", "food", "beach", "beach"})

	assert.Equal(t, map[string]int{"beach": 3, "food": 1}, got)
}

func TestDiversify_FiresOnce(t *testing.T) {
	cs := []candidate{
		{country: "A", score: 5, reason: "x"},
		{country: "A", score: 5, reason: "x"},
		{country: "A", score: 5, reason: "x"},
		{country: "B", score: 4, reason: "y"},
	}

	applied := diversify(cs, 3)

	assert.True(t, applied)
	assert.Equal(t, 5, cs[3].score)
	assert.Equal(t, "y Diversity bonus.", cs[3].reason)
	for _, c := range cs[:3] {
		assert.Equal(t, 5, c.score)
		assert.Equal(t, "x", c.reason)
	}
}

func TestSelectTop_TrimsReasonAndTruncates(t *testing.T) {
	cs := []candidate{
		{snapshot: domain.Destination{Name: "low"}, score: 1, reason: " low "},
		{snapshot: domain.Destination{Name: "high"}, score: 9, reason: "high "},
		{snapshot: domain.Destination{Name: "mid"}, score: 5, reason: "mid"},
	}

	got := selectTop(cs, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].Destination.Name)
	assert.Equal(t, "high", got[0].Reason)
	assert.Equal(t, "mid", got[1].Destination.Name)
}

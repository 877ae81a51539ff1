package domain

const (
	// DefaultRecommendationLimit applies when a request does not set Limit.
	DefaultRecommendationLimit = 10

	// MaxRecommendationLimit is the largest Limit a request may ask for.
	MaxRecommendationLimit = 100
)

// RecommendationRequest describes what the traveller wants.
// Budget, Duration and Interests are required; everything else is optional and
// nil means "not specified". Interests may repeat a tag: each repeat raises
// that tag's priority.
type RecommendationRequest struct {
	Budget      int      `json:"budget" validate:"required,gte=1"`
	Duration    int      `json:"duration" validate:"required,gte=1"`
	Interests   []string `json:"interests" validate:"required,min=1,dive,required"`
	Country     string   `json:"country,omitempty" validate:"omitempty,max=100"`
	MinBudget   *int     `json:"minBudget,omitempty" validate:"omitempty,gte=0"`
	MaxBudget   *int     `json:"maxBudget,omitempty" validate:"omitempty,gte=0"`
	MinDuration *int     `json:"minDuration,omitempty" validate:"omitempty,gte=1"`
	MaxDuration *int     `json:"maxDuration,omitempty" validate:"omitempty,gte=1"`
	Limit       *int     `json:"limit,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// EffectiveLimit returns Limit, or DefaultRecommendationLimit when unset.
func (r RecommendationRequest) EffectiveLimit() int {
	if r.Limit == nil {
		return DefaultRecommendationLimit
	}
	return *r.Limit
}

// Recommendation pairs a projected destination with the reasons it was chosen.
// Destination carries the concrete offer (MinBudget == MaxBudget, MinDuration == MaxDuration).
type Recommendation struct {
	Destination Destination `json:"destination"`
	Reason      string      `json:"reason"`
	Score       int         `json:"score"`
}

// RecommendationResponse is the ranked result, best first.
// An empty list is a valid answer, not an error.
type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/pkordes/travel-recommender/backend/internal/metrics"
)

// NewRateLimiter returns a per-client-IP fixed-window limiter allowing
// requests per window. Rejected requests get 429 with a JSON error body and
// are counted in api_rate_limit_hits_total. A non-positive requests value
// disables limiting.
func NewRateLimiter(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, _ *http.Request) {
	metrics.APIRateLimitHits.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests"}}`))
}

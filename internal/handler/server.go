// Package handler implements the HTTP handlers for the travel recommendation API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, recommendation.go, destination.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/spec"
)

// RecommendationServicer defines the operation the recommendation handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type RecommendationServicer interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
}

// DestinationServicer defines the catalog browsing operations.
type DestinationServicer interface {
	ListPaged(ctx context.Context, filter domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
}

// Server holds the handler dependencies.
type Server struct {
	recommendations RecommendationServicer
	destinations    DestinationServicer
	log             *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(recs RecommendationServicer, dests DestinationServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{recommendations: recs, destinations: dests, log: logger}
}

// Routes registers every endpoint on r. apiMiddleware wraps only the
// /api/recommendations subtree, so health checks and scrapes are never rate limited.
func (s *Server) Routes(r chi.Router, apiMiddleware ...func(http.Handler) http.Handler) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/recommendations", func(r chi.Router) {
		r.Use(apiMiddleware...)
		r.Post("/", s.CreateRecommendations)
		r.Get("/destinations", s.ListDestinations)
		r.Get("/destinations/{id}", s.GetDestination)
	})
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// DestinationList is the body of GET /api/recommendations/destinations.
type DestinationList struct {
	Data       []domain.Destination `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// listDestinationsParams holds the bound query parameters of ListDestinations.
type listDestinationsParams struct {
	Page     *int
	Limit    *int
	Country  *string
	Interest *string
}

// ListDestinations handles GET /api/recommendations/destinations.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and the
// optional filters ?country= and ?interest=.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	var params listDestinationsParams
	query := r.URL.Query()
	for _, p := range []struct {
		name string
		dest any
	}{
		{"page", &params.Page},
		{"limit", &params.Limit},
		{"country", &params.Country},
		{"interest", &params.Interest},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "invalid "+p.name+" parameter")
			return
		}
	}

	filter := domain.DestinationFilter{}
	if params.Country != nil {
		filter.Country = *params.Country
	}
	if params.Interest != nil {
		filter.Interest = *params.Interest
	}
	page := domain.NewPaginationParams(params.Page, params.Limit)

	dests, total, err := s.destinations.ListPaged(r.Context(), filter, page)
	if err != nil {
		s.writeServiceError(w, r, err, "destinations not found")
		return
	}
	if dests == nil {
		dests = []domain.Destination{}
	}

	writeJSON(w, http.StatusOK, DestinationList{
		Data: dests,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      int(total),
			TotalPages: page.TotalPages(total),
		},
	})
}

// GetDestination handles GET /api/recommendations/destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid destination id")
		return
	}

	dest, err := s.destinations.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "destination not found")
		return
	}

	writeJSON(w, http.StatusOK, dest)
}

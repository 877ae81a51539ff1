package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
)

// CreateRecommendations handles POST /api/recommendations.
// The body is a domain.RecommendationRequest; the response is always a list,
// possibly empty.
func (s *Server) CreateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	resp, err := s.recommendations.Recommend(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "no destinations available")
		return
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/services"
)

// MatchHandler serves the filterable match-making browser. The role
// query parameter selects which side of the marketplace to browse.
type MatchHandler struct {
	Service *services.MatchService
}

func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{Service: service}
}

// GetMatchesHandler filters the requested collection by industry, stage,
// location and a free-text query.
func (h *MatchHandler) GetMatchesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.MatchFilter{
		Industry: q.Get("industry"),
		Stage:    q.Get("stage"),
		Location: q.Get("location"),
		Query:    q.Get("q"),
	}

	switch q.Get("role") {
	case models.RoleFounder:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.Service.BrowseFounders(r.Context(), filter))
	case models.RoleInvestor:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.Service.BrowseInvestors(r.Context(), filter))
	default:
		http.Error(w, "role must be founder or investor", http.StatusBadRequest)
	}
}

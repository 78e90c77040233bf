package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/pkg/logger"
)

// FavoriteHandler serves the favorites ledger endpoints.
type FavoriteHandler struct {
	Service *services.FavoriteService
}

func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Service: service}
}

// GetFavoritesHandler resolves a user's favorites to full records.
// Dangling ids are silently absent from the result.
func (h *FavoriteHandler) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email parameter", http.StatusBadRequest)
		return
	}

	view, err := h.Service.List(r.Context(), email)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to list favorites")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// AddFavoriteHandler saves a counterpart to the user's favorites.
func (h *FavoriteHandler) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Service.Add)
}

// RemoveFavoriteHandler removes a counterpart from the user's favorites.
func (h *FavoriteHandler) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.Service.Remove)
}

func (h *FavoriteHandler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, email, targetID string) error) {
	var body struct {
		Email    string `json:"email"`
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if body.Email == "" || body.TargetID == "" {
		http.Error(w, "Missing email or targetId", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), body.Email, body.TargetID); err != nil {
		logger.Log.WithError(err).Warn("Failed to update favorites")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

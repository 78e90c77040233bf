package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/pkg/logger"
)

// FounderHandler serves the founder collection endpoints, the application
// form, and the admin moderation actions for founders.
type FounderHandler struct {
	Repo    *repository.FounderRepository
	Service *services.ProfileService
}

func NewFounderHandler(repo *repository.FounderRepository, service *services.ProfileService) *FounderHandler {
	return &FounderHandler{Repo: repo, Service: service}
}

// GetFoundersHandler returns the full founder collection. Read failures
// degrade to an empty list.
func (h *FounderHandler) GetFoundersHandler(w http.ResponseWriter, r *http.Request) {
	founders := h.Repo.GetAll(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(founders)
}

// ReplaceFoundersHandler overwrites the entire founder collection.
func (h *FounderHandler) ReplaceFoundersHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Founders []models.Founder `json:"founders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode founders payload")
		writeFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.Repo.ReplaceAll(r.Context(), body.Founders); err != nil {
		logger.Log.WithError(err).Error("Failed to replace founders collection")
		writeFailure(w, http.StatusInternalServerError, "Failed to save founders")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"founders": body.Founders,
	})
}

// ApplyFounderHandler creates a single founder profile from the
// application form.
func (h *FounderHandler) ApplyFounderHandler(w http.ResponseWriter, r *http.Request) {
	var founder models.Founder
	if err := json.NewDecoder(r.Body).Decode(&founder); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode founder application")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.SubmitFounderApplication(r.Context(), &founder)
	if err != nil {
		logger.Log.WithError(err).Warn("Founder application rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// AdminSetFounderStatusHandler toggles a founder's status between active
// and suspended.
func (h *FounderHandler) AdminSetFounderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	founder, err := h.Service.SetFounderStatus(r.Context(), id, body.Status)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to update founder status")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Log.WithField("founderID", id).Infof("Founder status set to %s", founder.Status)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(founder)
}

// AdminDeleteFounderHandler removes a founder record entirely.
func (h *FounderHandler) AdminDeleteFounderHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteFounder(r.Context(), id); err != nil {
		logger.Log.WithError(err).Warn("Failed to delete founder")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Founder deleted"})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

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

// InvestorHandler serves the investor collection endpoints, the
// application form, and the admin moderation actions for investors.
type InvestorHandler struct {
	Repo    *repository.InvestorRepository
	Service *services.ProfileService
}

func NewInvestorHandler(repo *repository.InvestorRepository, service *services.ProfileService) *InvestorHandler {
	return &InvestorHandler{Repo: repo, Service: service}
}

// GetInvestorsHandler returns the full investor collection.
func (h *InvestorHandler) GetInvestorsHandler(w http.ResponseWriter, r *http.Request) {
	investors := h.Repo.GetAll(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(investors)
}

// ReplaceInvestorsHandler overwrites the entire investor collection.
func (h *InvestorHandler) ReplaceInvestorsHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Investors []models.Investor `json:"investors"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode investors payload")
		writeFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.Repo.ReplaceAll(r.Context(), body.Investors); err != nil {
		logger.Log.WithError(err).Error("Failed to replace investors collection")
		writeFailure(w, http.StatusInternalServerError, "Failed to save investors")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"investors": body.Investors,
	})
}

// ApplyInvestorHandler creates a single investor profile from the
// application form.
func (h *InvestorHandler) ApplyInvestorHandler(w http.ResponseWriter, r *http.Request) {
	var investor models.Investor
	if err := json.NewDecoder(r.Body).Decode(&investor); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode investor application")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.SubmitInvestorApplication(r.Context(), &investor)
	if err != nil {
		logger.Log.WithError(err).Warn("Investor application rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// AdminSetInvestorStatusHandler toggles an investor's status.
func (h *InvestorHandler) AdminSetInvestorStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	investor, err := h.Service.SetInvestorStatus(r.Context(), id, body.Status)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to update investor status")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Log.WithField("investorID", id).Infof("Investor status set to %s", investor.Status)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(investor)
}

// AdminDeleteInvestorHandler removes an investor record entirely.
func (h *InvestorHandler) AdminDeleteInvestorHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteInvestor(r.Context(), id); err != nil {
		logger.Log.WithError(err).Warn("Failed to delete investor")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Investor deleted"})
}

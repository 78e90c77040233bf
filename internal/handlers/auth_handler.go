package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/venturelink/venturelink/internal/config"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/services"
	jwtutil "github.com/venturelink/venturelink/pkg/jwt"
	"github.com/venturelink/venturelink/pkg/logger"
)

// AuthHandler handles login and the profile fetch/edit endpoints.
// Members log in by email match only; the admin account additionally
// requires a password checked against a configured bcrypt hash.
type AuthHandler struct {
	Identity *services.IdentityService
	Profiles *services.ProfileService
	Config   *config.Config
}

func NewAuthHandler(identity *services.IdentityService, profiles *services.ProfileService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Identity: identity,
		Profiles: profiles,
		Config:   cfg,
	}
}

// LoginHandler resolves the email to an account and issues a JWT.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if h.Config.AdminEmail != "" && strings.EqualFold(credentials.Email, h.Config.AdminEmail) {
		h.adminLogin(w, credentials.Email, credentials.Password)
		return
	}

	identity, err := h.Identity.Resolve(r.Context(), credentials.Email)
	if err != nil {
		logger.Log.WithField("email", credentials.Email).Warn("Login failed: unknown email")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := jwtutil.GenerateToken(identity.ID(), identity.Email(), identity.Role, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate JWT token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	logger.Log.WithField("email", identity.Email()).Info("User logged in")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"role":    identity.Role,
		"profile": h.profilePayload(identity),
	})
}

func (h *AuthHandler) adminLogin(w http.ResponseWriter, email, password string) {
	if err := bcrypt.CompareHashAndPassword([]byte(h.Config.AdminPasswordHash), []byte(password)); err != nil {
		logger.Log.Warn("Admin login failed: invalid credentials")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := jwtutil.GenerateToken("admin", email, "admin", h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate admin token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	logger.Log.Info("Admin logged in")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"role":  "admin",
	})
}

// GetProfileHandler resolves an email to its founder or investor record.
func (h *AuthHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email parameter", http.StatusBadRequest)
		return
	}

	identity, err := h.Identity.Resolve(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"role":    identity.Role,
		"profile": h.profilePayload(identity),
	})
}

// UpdateProfileHandler replaces the profile fields of the record matching
// the payload's email. The record's role is resolved first so the body
// can be decoded into the right shape.
func (h *AuthHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var probe struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Email == "" {
		http.Error(w, "Missing email in payload", http.StatusBadRequest)
		return
	}

	identity, err := h.Identity.Resolve(r.Context(), probe.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if identity.Role == models.RoleFounder {
		var founder models.Founder
		if err := json.Unmarshal(raw, &founder); err != nil {
			http.Error(w, "Invalid founder payload", http.StatusBadRequest)
			return
		}
		updated, err := h.Profiles.UpdateFounderProfile(r.Context(), founder)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to update founder profile")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(updated)
		return
	}

	var investor models.Investor
	if err := json.Unmarshal(raw, &investor); err != nil {
		http.Error(w, "Invalid investor payload", http.StatusBadRequest)
		return
	}
	updated, err := h.Profiles.UpdateInvestorProfile(r.Context(), investor)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to update investor profile")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *AuthHandler) profilePayload(identity *services.Identity) interface{} {
	if identity.Role == models.RoleFounder {
		return identity.Founder
	}
	return identity.Investor
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/pkg/logger"
)

// ConnectionHandler serves the connection-request lifecycle endpoints.
type ConnectionHandler struct {
	Service *services.ConnectionService
}

func NewConnectionHandler(service *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{Service: service}
}

// ContactHandler sends a connection request with a templated greeting.
// If a request already exists for the pair, nothing new is created.
func (h *ConnectionHandler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SenderEmail    string `json:"senderEmail"`
		RecipientEmail string `json:"recipientEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	request, created, err := h.Service.Contact(r.Context(), body.SenderEmail, body.RecipientEmail)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to send connection request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"created": created,
		"request": request,
	})
}

// RespondHandler accepts or rejects the pending request in a
// conversation.
func (h *ConnectionHandler) RespondHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	var body struct {
		ResponderEmail string `json:"responderEmail"`
		Accept         bool   `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.Service.Respond(r.Context(), conversationID, body.ResponderEmail, body.Accept); err != nil {
		logger.Log.WithError(err).Warn("Failed to respond to connection request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"conversationId": conversationID,
		"accepted":       body.Accept,
	}).Info("Connection request response recorded")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Connection request response recorded",
	})
}

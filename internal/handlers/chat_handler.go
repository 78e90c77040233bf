package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/pkg/logger"
)

// ChatHandler serves the conversation views derived from the message log.
type ChatHandler struct {
	Service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// GetConversationsHandler lists conversation summaries for a user,
// newest first.
func (h *ChatHandler) GetConversationsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email parameter", http.StatusBadRequest)
		return
	}

	summaries := h.Service.Conversations(r.Context(), email)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// GetConversationHandler returns the full thread and marks messages
// addressed to the viewer as read.
func (h *ChatHandler) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["id"]
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email parameter", http.StatusBadRequest)
		return
	}

	thread, err := h.Service.OpenConversation(r.Context(), conversationID, email)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open conversation")
		http.Error(w, "Failed to open conversation", http.StatusInternalServerError)
		return
	}
	if thread == nil {
		thread = []models.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(thread)
}

// SendMessageHandler appends a new message between two members.
func (h *ChatHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SenderEmail    string `json:"senderEmail"`
		RecipientEmail string `json:"recipientEmail"`
		Message        string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	msg, err := h.Service.SendMessage(r.Context(), body.SenderEmail, body.RecipientEmail, body.Message)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to send message")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

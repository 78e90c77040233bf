package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/pkg/logger"
)

// MessageHandler serves the raw message collection endpoints. POST is an
// action dispatch: add one message, replace the whole collection, or mark
// a conversation as read.
type MessageHandler struct {
	Repo *repository.MessageRepository
	Chat *services.ChatService
}

func NewMessageHandler(repo *repository.MessageRepository, chat *services.ChatService) *MessageHandler {
	return &MessageHandler{Repo: repo, Chat: chat}
}

// GetMessagesHandler returns the full message log.
func (h *MessageHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages := h.Repo.GetAll(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

type messageActionRequest struct {
	Action         string           `json:"action"`
	Message        *models.Message  `json:"message,omitempty"`
	Messages       []models.Message `json:"messages,omitempty"`
	ConversationID string           `json:"conversationId,omitempty"`
	RecipientEmail string           `json:"recipientEmail,omitempty"`
}

// PostMessagesHandler dispatches on the action field.
func (h *MessageHandler) PostMessagesHandler(w http.ResponseWriter, r *http.Request) {
	var body messageActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode messages payload")
		writeFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	switch body.Action {
	case "add":
		h.addMessage(w, r, body.Message)
	case "update":
		h.replaceMessages(w, r, body.Messages)
	case "markAsRead":
		h.markAsRead(w, r, body.ConversationID, body.RecipientEmail)
	default:
		writeFailure(w, http.StatusBadRequest, "Unknown action")
	}
}

func (h *MessageHandler) addMessage(w http.ResponseWriter, r *http.Request, msg *models.Message) {
	if msg == nil {
		writeFailure(w, http.StatusBadRequest, "Missing message")
		return
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.ConversationID == "" {
		msg.ConversationID = models.ConversationID(msg.Sender.Email, msg.Recipient.Email)
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if err := h.Repo.Append(r.Context(), *msg); err != nil {
		logger.Log.WithError(err).Error("Failed to append message")
		writeFailure(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": msg,
	})
}

func (h *MessageHandler) replaceMessages(w http.ResponseWriter, r *http.Request, messages []models.Message) {
	if err := h.Repo.ReplaceAll(r.Context(), messages); err != nil {
		logger.Log.WithError(err).Error("Failed to replace messages collection")
		writeFailure(w, http.StatusInternalServerError, "Failed to save messages")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *MessageHandler) markAsRead(w http.ResponseWriter, r *http.Request, conversationID, recipientEmail string) {
	if conversationID == "" || recipientEmail == "" {
		writeFailure(w, http.StatusBadRequest, "Missing conversationId or recipientEmail")
		return
	}

	if err := h.Chat.MarkAsRead(r.Context(), conversationID, recipientEmail); err != nil {
		logger.Log.WithError(err).Error("Failed to mark conversation as read")
		writeFailure(w, http.StatusInternalServerError, "Failed to mark as read")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

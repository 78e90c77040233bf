package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
)

// ChatService handles sending messages and deriving conversation views
// from the flat message log.
type ChatService struct {
	messageRepo *repository.MessageRepository
	identity    *IdentityService
}

func NewChatService(messageRepo *repository.MessageRepository, identity *IdentityService) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		identity:    identity,
	}
}

// SendMessage appends a new message between two resolved accounts.
func (s *ChatService) SendMessage(ctx context.Context, senderEmail, recipientEmail, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text cannot be empty")
	}
	if strings.EqualFold(senderEmail, recipientEmail) {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}

	sender, err := s.identity.Resolve(ctx, senderEmail)
	if err != nil {
		return nil, fmt.Errorf("sender: %v", err)
	}
	recipient, err := s.identity.Resolve(ctx, recipientEmail)
	if err != nil {
		return nil, fmt.Errorf("recipient: %v", err)
	}

	msg := models.Message{
		ID:             uuid.NewString(),
		ConversationID: models.ConversationID(sender.Email(), recipient.Email()),
		Sender:         sender.Participant(),
		Recipient:      recipient.Participant(),
		Message:        text,
		Timestamp:      time.Now(),
		Read:           false,
	}

	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"conversationId": msg.ConversationID,
		"sender":         senderEmail,
	}).Info("Message sent")
	return &msg, nil
}

// Conversations groups the message log into per-conversation summaries
// for the given user, ordered by last-message time descending. Timestamp
// ties are broken by storage order: the later message in the log wins.
func (s *ChatService) Conversations(ctx context.Context, userEmail string) []models.ConversationSummary {
	messages := s.messageRepo.GetAll(ctx)

	summaries := make(map[string]*models.ConversationSummary)
	var order []string

	for _, msg := range messages {
		mine := strings.EqualFold(msg.Sender.Email, userEmail) || strings.EqualFold(msg.Recipient.Email, userEmail)
		if !mine {
			continue
		}

		summary, ok := summaries[msg.ConversationID]
		if !ok {
			summary = &models.ConversationSummary{ConversationID: msg.ConversationID}
			summaries[msg.ConversationID] = summary
			order = append(order, msg.ConversationID)
		}

		if !msg.Timestamp.Before(summary.LastMessageTime) {
			summary.LastMessage = msg.Message
			summary.LastMessageTime = msg.Timestamp
		}

		if strings.EqualFold(msg.Sender.Email, userEmail) {
			summary.Participant = msg.Recipient
		} else {
			summary.Participant = msg.Sender
			if !msg.Read {
				summary.UnreadCount++
			}
		}
	}

	result := make([]models.ConversationSummary, 0, len(order))
	for _, id := range order {
		result = append(result, *summaries[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastMessageTime.After(result[j].LastMessageTime)
	})
	return result
}

// OpenConversation returns the full thread in chronological order and
// marks every message addressed to the viewer as read.
func (s *ChatService) OpenConversation(ctx context.Context, conversationID, viewerEmail string) ([]models.Message, error) {
	if err := s.MarkAsRead(ctx, conversationID, viewerEmail); err != nil {
		return nil, err
	}

	var thread []models.Message
	for _, msg := range s.messageRepo.GetAll(ctx) {
		if msg.ConversationID == conversationID {
			thread = append(thread, msg)
		}
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].Timestamp.Before(thread[j].Timestamp)
	})
	return thread, nil
}

// MarkAsRead flags every message in the conversation addressed to the
// recipient as read and persists the full collection. Messages addressed
// to the other participant are untouched.
func (s *ChatService) MarkAsRead(ctx context.Context, conversationID, recipientEmail string) error {
	messages := s.messageRepo.GetAll(ctx)

	changed := false
	for i := range messages {
		if messages[i].ConversationID == conversationID &&
			strings.EqualFold(messages[i].Recipient.Email, recipientEmail) &&
			!messages[i].Read {
			messages[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.messageRepo.ReplaceAll(ctx, messages); err != nil {
		return fmt.Errorf("failed to mark conversation as read: %v", err)
	}
	return nil
}

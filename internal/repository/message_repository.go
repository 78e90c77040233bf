package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/storage"
)

const messagesCollection = "messages"

type MessageRepository struct {
	store *storage.Store
}

func NewMessageRepository(store *storage.Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// GetAll returns the full message log in storage order. Read failures
// degrade to an empty collection and are only logged.
func (r *MessageRepository) GetAll(ctx context.Context) []models.Message {
	var messages []models.Message
	if err := r.store.Read(messagesCollection, &messages); err != nil {
		logrus.WithError(err).Error("Failed to read messages collection")
		return []models.Message{}
	}
	if messages == nil {
		return []models.Message{}
	}
	return messages
}

// ReplaceAll overwrites the entire message collection. Used for bulk
// status changes such as mark-as-read and request accept/reject.
func (r *MessageRepository) ReplaceAll(ctx context.Context, messages []models.Message) error {
	if messages == nil {
		messages = []models.Message{}
	}
	return r.store.Replace(messagesCollection, messages)
}

// Append adds one message to the end of the log.
func (r *MessageRepository) Append(ctx context.Context, msg models.Message) error {
	messages := r.GetAll(ctx)
	messages = append(messages, msg)
	return r.ReplaceAll(ctx, messages)
}

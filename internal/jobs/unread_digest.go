package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/pkg/email"
)

// UnreadDigest scans the message log and emails each member a count of
// their unread messages. Read-only: it never mutates collections.
type UnreadDigest struct {
	MessageRepo *repository.MessageRepository
	Notifier    *email.Notifier
}

func NewUnreadDigest(messageRepo *repository.MessageRepository, notifier *email.Notifier) *UnreadDigest {
	return &UnreadDigest{
		MessageRepo: messageRepo,
		Notifier:    notifier,
	}
}

// Run computes unread counts per recipient and sends one digest email
// per member with pending messages.
func (d *UnreadDigest) Run(ctx context.Context) error {
	if !d.Notifier.Enabled() {
		logrus.Debug("Unread digest skipped: SMTP not configured")
		return nil
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	for _, msg := range d.MessageRepo.GetAll(ctx) {
		if msg.Read {
			continue
		}
		key := strings.ToLower(msg.Recipient.Email)
		counts[key]++
		names[key] = msg.Recipient.Name
	}

	var failed int
	for recipient, count := range counts {
		body := fmt.Sprintf("Hi %s,\n\nYou have %d unread message(s) waiting for you on VentureLink.",
			names[recipient], count)
		if err := d.Notifier.Send(recipient, "You have unread messages", body); err != nil {
			logrus.WithError(err).WithField("recipient", recipient).Warn("Failed to send digest email")
			failed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"recipients": len(counts),
		"failed":     failed,
	}).Info("Unread digest scan completed")
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/pkg/email"
)

// ConnectionService drives the connection-request lifecycle: a pending
// request message, accepted or rejected by the recipient.
type ConnectionService struct {
	messageRepo  *repository.MessageRepository
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
	identity     *IdentityService
	notifier     *email.Notifier
}

func NewConnectionService(
	messageRepo *repository.MessageRepository,
	founderRepo *repository.FounderRepository,
	investorRepo *repository.InvestorRepository,
	identity *IdentityService,
	notifier *email.Notifier,
) *ConnectionService {
	return &ConnectionService{
		messageRepo:  messageRepo,
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
		identity:     identity,
		notifier:     notifier,
	}
}

// Contact sends a connection request with a templated greeting. If any
// connection-request message already exists for the pair, no new request
// is created and the existing one is returned; created reports whether a
// request was actually sent.
func (s *ConnectionService) Contact(ctx context.Context, senderEmail, recipientEmail string) (msg *models.Message, created bool, err error) {
	if strings.EqualFold(senderEmail, recipientEmail) {
		return nil, false, fmt.Errorf("cannot send a connection request to yourself")
	}

	sender, err := s.identity.Resolve(ctx, senderEmail)
	if err != nil {
		return nil, false, fmt.Errorf("sender: %v", err)
	}
	recipient, err := s.identity.Resolve(ctx, recipientEmail)
	if err != nil {
		return nil, false, fmt.Errorf("recipient: %v", err)
	}

	conversationID := models.ConversationID(sender.Email(), recipient.Email())

	messages := s.messageRepo.GetAll(ctx)
	for i := range messages {
		if messages[i].ConversationID == conversationID && messages[i].IsConnectionRequest {
			existing := messages[i]
			return &existing, false, nil
		}
	}

	request := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Sender:         sender.Participant(),
		Recipient:      recipient.Participant(),
		Message: fmt.Sprintf(
			"Hi %s, I came across your profile on VentureLink and would love to connect.",
			recipient.Name()),
		Timestamp:           time.Now(),
		Read:                false,
		IsConnectionRequest: true,
		RequestStatus:       models.RequestStatusPending,
	}

	messages = append(messages, request)
	if err := s.messageRepo.ReplaceAll(ctx, messages); err != nil {
		return nil, false, fmt.Errorf("failed to save connection request: %v", err)
	}

	s.notify(recipient.Email(), "New connection request",
		fmt.Sprintf("%s wants to connect with you on VentureLink.", sender.Name()))

	logrus.WithFields(logrus.Fields{
		"conversationId": conversationID,
		"sender":         senderEmail,
	}).Info("Connection request sent")
	return &request, true, nil
}

// Respond accepts or rejects the pending request in the conversation.
// Only the request's recipient may respond. Accepting flips the request
// status, adds the requester to the responder's favorites and appends an
// auto-generated acceptance reply; rejecting only flips the status.
// Responding again with the same outcome is a no-op.
func (s *ConnectionService) Respond(ctx context.Context, conversationID, responderEmail string, accept bool) error {
	responder, err := s.identity.Resolve(ctx, responderEmail)
	if err != nil {
		return fmt.Errorf("responder: %v", err)
	}

	messages := s.messageRepo.GetAll(ctx)

	requestIdx := -1
	for i := range messages {
		if messages[i].ConversationID == conversationID && messages[i].IsConnectionRequest {
			requestIdx = i
			break
		}
	}
	if requestIdx == -1 {
		return fmt.Errorf("connection request not found")
	}

	request := &messages[requestIdx]
	if !strings.EqualFold(request.Recipient.Email, responderEmail) {
		return fmt.Errorf("only the request recipient can respond")
	}

	target := models.RequestStatusRejected
	if accept {
		target = models.RequestStatusAccepted
	}
	if request.RequestStatus != models.RequestStatusPending {
		if request.RequestStatus == target {
			return nil
		}
		return fmt.Errorf("request already responded to")
	}

	request.RequestStatus = target

	if accept {
		reply := models.Message{
			ID:             uuid.NewString(),
			ConversationID: conversationID,
			Sender:         responder.Participant(),
			Recipient:      request.Sender,
			Message: fmt.Sprintf(
				"Hi %s, thanks for reaching out. Happy to connect!",
				request.Sender.Name),
			Timestamp: time.Now(),
			Read:      false,
		}
		messages = append(messages, reply)
	}

	if err := s.messageRepo.ReplaceAll(ctx, messages); err != nil {
		return fmt.Errorf("failed to update connection request: %v", err)
	}

	if accept {
		if err := s.addToFavorites(ctx, responder, request.Sender.ID); err != nil {
			return err
		}
		s.notify(request.Sender.Email, "Connection request accepted",
			fmt.Sprintf("%s accepted your connection request on VentureLink.", responder.Name()))
	}

	logrus.WithFields(logrus.Fields{
		"conversationId": conversationID,
		"responder":      responderEmail,
		"accepted":       accept,
	}).Info("Connection request responded to")
	return nil
}

// addToFavorites appends the requester's id to the responder's favorites
// list if not already present.
func (s *ConnectionService) addToFavorites(ctx context.Context, responder *Identity, requesterID string) error {
	switch responder.Role {
	case models.RoleFounder:
		founders := s.founderRepo.GetAll(ctx)
		for i := range founders {
			if founders[i].ID == responder.Founder.ID {
				founders[i].Favorites = appendIfMissing(founders[i].Favorites, requesterID)
				return s.founderRepo.ReplaceAll(ctx, founders)
			}
		}
	case models.RoleInvestor:
		investors := s.investorRepo.GetAll(ctx)
		for i := range investors {
			if investors[i].ID == responder.Investor.ID {
				investors[i].Favorites = appendIfMissing(investors[i].Favorites, requesterID)
				return s.investorRepo.ReplaceAll(ctx, investors)
			}
		}
	}
	return fmt.Errorf("responder record not found")
}

func (s *ConnectionService) notify(to, subject, body string) {
	if !s.notifier.Enabled() {
		return
	}
	if err := s.notifier.Send(to, subject, body); err != nil {
		logrus.WithError(err).Warn("Failed to send notification email")
	}
}

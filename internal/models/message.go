package models

import "time"

const (
	RoleFounder  = "founder"
	RoleInvestor = "investor"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// Participant is the denormalized sender/recipient snapshot embedded in
// every message.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// Message is a single chat message. A connection request is a message with
// IsConnectionRequest set and a RequestStatus; at most one request message
// exists per conversation.
type Message struct {
	ID                  string      `json:"id"`
	ConversationID      string      `json:"conversationId"`
	Sender              Participant `json:"sender"`
	Recipient           Participant `json:"recipient"`
	Message             string      `json:"message"`
	Timestamp           time.Time   `json:"timestamp"`
	Read                bool        `json:"read"`
	IsConnectionRequest bool        `json:"isConnectionRequest,omitempty"`
	RequestStatus       string      `json:"requestStatus,omitempty"`
}

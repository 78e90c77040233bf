package models

import "time"

// ConversationID derives the thread key for an unordered pair of
// participant emails: both emails sorted lexicographically, joined by an
// underscore. Both sides of a conversation resolve to the same id no
// matter who initiated contact.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "_" + b
}

// ConversationSummary is one row of a user's inbox: the counterpart, the
// most recent message and the number of unread messages addressed to the
// viewing user.
type ConversationSummary struct {
	ConversationID  string      `json:"conversationId"`
	Participant     Participant `json:"participant"`
	LastMessage     string      `json:"lastMessage"`
	LastMessageTime time.Time   `json:"lastMessageTime"`
	UnreadCount     int         `json:"unreadCount"`
}

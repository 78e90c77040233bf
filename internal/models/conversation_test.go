package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationIDOrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{"alice@example.com", "bob@example.com"},
		{"bob@example.com", "alice@example.com"},
		{"z@z.com", "a@a.com"},
		{"same@x.com", "same@x.com"},
	}

	for _, p := range pairs {
		assert.Equal(t, ConversationID(p[0], p[1]), ConversationID(p[1], p[0]))
	}

	assert.Equal(t, "alice@example.com_bob@example.com",
		ConversationID("bob@example.com", "alice@example.com"))
}

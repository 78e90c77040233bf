package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelink/venturelink/internal/models"
)

func TestContactCreatesPendingRequest(t *testing.T) {
	env := newTestEnv(t)

	request, created, err := env.connections().Contact(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, request.IsConnectionRequest)
	assert.Equal(t, models.RequestStatusPending, request.RequestStatus)
	assert.Contains(t, request.Message, "Bob")

	log := env.messageRepo.GetAll(context.Background())
	require.Len(t, log, 1)
}

func TestContactIsIdempotentPerPair(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()

	first, created, err := svc.Contact(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	require.True(t, created)

	// Second contact from either direction must not create a second
	// request message for the conversation.
	second, created, err := svc.Contact(context.Background(), "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	reversed, created, err := svc.Contact(context.Background(), "bob@example.com", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, reversed.ID)

	count := 0
	for _, m := range env.messageRepo.GetAll(context.Background()) {
		if m.IsConnectionRequest {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestContactRejectsSelf(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.connections().Contact(context.Background(), "alice@example.com", "alice@example.com")
	require.Error(t, err)
}

func TestAcceptBundle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()
	ctx := context.Background()

	request, _, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Respond(ctx, request.ConversationID, "bob@example.com", true))

	log := env.messageRepo.GetAll(ctx)
	require.Len(t, log, 2)
	assert.Equal(t, models.RequestStatusAccepted, log[0].RequestStatus)

	// Auto-generated acceptance reply from Bob to Alice.
	reply := log[1]
	assert.False(t, reply.IsConnectionRequest)
	assert.Equal(t, "bob@example.com", reply.Sender.Email)
	assert.Equal(t, "alice@example.com", reply.Recipient.Email)
	assert.Contains(t, reply.Message, "Alice")

	// Responder's favorites gained the requester's id.
	bob, ok := env.investorRepo.FindByEmail(ctx, "bob@example.com")
	require.True(t, ok)
	assert.Equal(t, []string{"f1"}, bob.Favorites)
}

func TestAcceptTwiceKeepsFavoritesUnique(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()
	ctx := context.Background()

	request, _, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Respond(ctx, request.ConversationID, "bob@example.com", true))
	require.NoError(t, svc.Respond(ctx, request.ConversationID, "bob@example.com", true))

	bob, ok := env.investorRepo.FindByEmail(ctx, "bob@example.com")
	require.True(t, ok)
	assert.Equal(t, []string{"f1"}, bob.Favorites)
}

func TestRejectFlipsStatusOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()
	ctx := context.Background()

	request, _, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Respond(ctx, request.ConversationID, "bob@example.com", false))

	log := env.messageRepo.GetAll(ctx)
	require.Len(t, log, 1)
	assert.Equal(t, models.RequestStatusRejected, log[0].RequestStatus)

	bob, ok := env.investorRepo.FindByEmail(ctx, "bob@example.com")
	require.True(t, ok)
	assert.Empty(t, bob.Favorites)
}

// A rejected request still blocks a later contact attempt for the pair:
// the existence check does not look at the request status. Recorded as a
// questionable-but-current behavior in DESIGN.md.
func TestRejectThenRecontactIsBlocked(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()
	ctx := context.Background()

	request, _, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Respond(ctx, request.ConversationID, "bob@example.com", false))

	again, created, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.RequestStatusRejected, again.RequestStatus)
}

func TestRespondOnlyByRecipient(t *testing.T) {
	env := newTestEnv(t)
	svc := env.connections()
	ctx := context.Background()

	request, _, err := svc.Contact(ctx, "alice@example.com", "bob@example.com")
	require.NoError(t, err)

	err = svc.Respond(ctx, request.ConversationID, "alice@example.com", true)
	require.Error(t, err)
}

func TestRespondUnknownConversation(t *testing.T) {
	env := newTestEnv(t)

	err := env.connections().Respond(context.Background(), "a@x.com_b@x.com", "bob@example.com", true)
	require.Error(t, err)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/internal/storage"
	"github.com/venturelink/venturelink/pkg/email"
)

type testEnv struct {
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
	messageRepo  *repository.MessageRepository
	identity     *IdentityService
}

var (
	aliceP = models.Participant{ID: "f1", Name: "Alice", Email: "alice@example.com", Role: models.RoleFounder}
	bobP   = models.Participant{ID: "i1", Name: "Bob", Email: "bob@example.com", Role: models.RoleInvestor}
	carolP = models.Participant{ID: "f2", Name: "Carol", Email: "carol@example.com", Role: models.RoleFounder}
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		founderRepo:  repository.NewFounderRepository(store),
		investorRepo: repository.NewInvestorRepository(store),
		messageRepo:  repository.NewMessageRepository(store),
	}
	env.identity = NewIdentityService(env.founderRepo, env.investorRepo)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, env.founderRepo.ReplaceAll(context.Background(), []models.Founder{
		{
			ID: "f1", Name: "Alice", Email: "alice@example.com", Company: "Acme Robotics",
			Industry: "Robotics", Stage: "Seed", Location: "Berlin",
			Description: "Autonomous warehouse robots", FundingGoal: "$1M",
			Status: models.StatusActive, Favorites: []string{}, CreatedAt: created,
		},
		{
			ID: "f2", Name: "Carol", Email: "carol@example.com", Company: "Greenleaf",
			Industry: "AgTech", Stage: "Series A", Location: "Lisbon",
			Description: "Vertical farming kits", FundingGoal: "$3M",
			Status: models.StatusActive, Favorites: []string{}, CreatedAt: created,
		},
	}))
	require.NoError(t, env.investorRepo.ReplaceAll(context.Background(), []models.Investor{
		{
			ID: "i1", Name: "Bob", Email: "bob@example.com", Firm: "Northstar Capital",
			Industries: []string{"Robotics", "AgTech"}, Stages: []string{"Seed", "Series A"},
			InvestmentRange: "$500K-$2M", Location: "London", Bio: "Early stage hardware investor",
			Status: models.StatusActive, Favorites: []string{}, CreatedAt: created,
		},
	}))

	return env
}

func (e *testEnv) chat() *ChatService {
	return NewChatService(e.messageRepo, e.identity)
}

func (e *testEnv) connections() *ConnectionService {
	// notifier without a host is disabled; sends are dropped
	return NewConnectionService(e.messageRepo, e.founderRepo, e.investorRepo, e.identity, email.NewNotifier("", "", "", ""))
}

func testMessage(sender, recipient models.Participant, text string, ts time.Time, read bool) models.Message {
	return models.Message{
		ID:             "m-" + ts.Format("150405.000000000"),
		ConversationID: models.ConversationID(sender.Email, recipient.Email),
		Sender:         sender,
		Recipient:      recipient,
		Message:        text,
		Timestamp:      ts,
		Read:           read,
	}
}

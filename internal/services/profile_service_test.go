package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelink/venturelink/internal/models"
)

func (e *testEnv) profiles() *ProfileService {
	return NewProfileService(e.founderRepo, e.investorRepo)
}

func TestSubmitFounderApplication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.profiles().SubmitFounderApplication(ctx, &models.Founder{
		Name: "Dana", Email: "dana@example.com", Company: "Finely",
		Industry: "Fintech", Stage: "Seed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.NotNil(t, created.Favorites)
	assert.False(t, created.CreatedAt.IsZero())

	found, ok := env.founderRepo.FindByEmail(ctx, "dana@example.com")
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
}

func TestSubmitApplicationValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profiles()
	ctx := context.Background()

	_, err := svc.SubmitFounderApplication(ctx, &models.Founder{Name: "NoEmail", Company: "X"})
	require.Error(t, err)

	_, err = svc.SubmitFounderApplication(ctx, &models.Founder{Name: "Bad", Email: "not-an-email", Company: "X"})
	require.Error(t, err)

	// Email is unique across both collections: bob is an investor.
	_, err = svc.SubmitFounderApplication(ctx, &models.Founder{Name: "Dup", Email: "bob@example.com", Company: "X"})
	require.Error(t, err)

	_, err = svc.SubmitInvestorApplication(ctx, &models.Investor{Name: "Dup", Email: "alice@example.com", Firm: "Y"})
	require.Error(t, err)
}

func TestUpdateFounderProfilePreservesIdentityFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.favorites().Add(ctx, "alice@example.com", "i1"))

	updated, err := env.profiles().UpdateFounderProfile(ctx, models.Founder{
		Email: "alice@example.com", Name: "Alice A.", Company: "Acme Robotics GmbH",
		Industry: "Robotics", Stage: "Series A", Location: "Munich",
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", updated.ID)
	assert.Equal(t, "Alice A.", updated.Name)
	assert.Equal(t, models.StatusActive, updated.Status)
	assert.Equal(t, []string{"i1"}, updated.Favorites)
}

func TestSetStatusAndDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.profiles()
	ctx := context.Background()

	suspended, err := svc.SetFounderStatus(ctx, "f1", models.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, suspended.Status)

	_, err = svc.SetFounderStatus(ctx, "f1", "banned")
	require.Error(t, err)

	require.NoError(t, svc.DeleteFounder(ctx, "f1"))
	_, ok := env.founderRepo.FindByID(ctx, "f1")
	assert.False(t, ok)

	require.Error(t, svc.DeleteFounder(ctx, "f1"))
}

func TestIdentityResolveScansBothCollections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder, err := env.identity.Resolve(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFounder, founder.Role)
	assert.Equal(t, "f1", founder.ID())

	investor, err := env.identity.Resolve(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleInvestor, investor.Role)

	_, err = env.identity.Resolve(ctx, "missing@example.com")
	require.Error(t, err)
}

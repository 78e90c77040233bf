package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
)

// Identity is a resolved account: the record found for an email plus its
// role tag. Exactly one of Founder/Investor is set.
type Identity struct {
	Role     string
	Founder  *models.Founder
	Investor *models.Investor
}

func (i *Identity) ID() string {
	if i.Role == models.RoleFounder {
		return i.Founder.ID
	}
	return i.Investor.ID
}

func (i *Identity) Name() string {
	if i.Role == models.RoleFounder {
		return i.Founder.Name
	}
	return i.Investor.Name
}

func (i *Identity) Email() string {
	if i.Role == models.RoleFounder {
		return i.Founder.Email
	}
	return i.Investor.Email
}

func (i *Identity) Avatar() string {
	if i.Role == models.RoleFounder {
		return i.Founder.Avatar
	}
	return i.Investor.Avatar
}

// Participant returns the message participant snapshot for this identity.
func (i *Identity) Participant() models.Participant {
	return models.Participant{
		ID:     i.ID(),
		Name:   i.Name(),
		Email:  i.Email(),
		Avatar: i.Avatar(),
		Role:   i.Role,
	}
}

// IdentityService maps an email address to a founder or investor record.
type IdentityService struct {
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
}

func NewIdentityService(founderRepo *repository.FounderRepository, investorRepo *repository.InvestorRepository) *IdentityService {
	return &IdentityService{
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
	}
}

// Resolve scans founders then investors for a matching email. The full
// collection is re-read on every call; there is no caching.
func (s *IdentityService) Resolve(ctx context.Context, email string) (*Identity, error) {
	if founder, ok := s.founderRepo.FindByEmail(ctx, email); ok {
		return &Identity{Role: models.RoleFounder, Founder: founder}, nil
	}
	if investor, ok := s.investorRepo.FindByEmail(ctx, email); ok {
		return &Identity{Role: models.RoleInvestor, Investor: investor}, nil
	}
	logrus.WithField("email", email).Warn("No account found for email")
	return nil, fmt.Errorf("no account found with this email")
}

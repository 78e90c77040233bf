package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
)

// FavoritesView holds a user's resolved favorites. Exactly one of the
// two slices is populated, depending on the owner's role.
type FavoritesView struct {
	Role      string            `json:"role"`
	Founders  []models.Founder  `json:"founders,omitempty"`
	Investors []models.Investor `json:"investors,omitempty"`
}

// FavoriteService manages the favorites list embedded in each founder and
// investor record.
type FavoriteService struct {
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
	identity     *IdentityService
}

func NewFavoriteService(founderRepo *repository.FounderRepository, investorRepo *repository.InvestorRepository, identity *IdentityService) *FavoriteService {
	return &FavoriteService{
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
		identity:     identity,
	}
}

// Add appends targetID to the owner's favorites if not already present.
func (s *FavoriteService) Add(ctx context.Context, ownerEmail, targetID string) error {
	return s.mutate(ctx, ownerEmail, func(favorites []string) []string {
		return appendIfMissing(favorites, targetID)
	})
}

// Remove filters targetID out of the owner's favorites.
func (s *FavoriteService) Remove(ctx context.Context, ownerEmail, targetID string) error {
	return s.mutate(ctx, ownerEmail, func(favorites []string) []string {
		filtered := make([]string, 0, len(favorites))
		for _, id := range favorites {
			if id != targetID {
				filtered = append(filtered, id)
			}
		}
		return filtered
	})
}

// List resolves the owner's favorite ids against the counterpart
// collection. Dangling ids (favorited records since deleted) resolve to
// no match and are silently absent from the result.
func (s *FavoriteService) List(ctx context.Context, ownerEmail string) (*FavoritesView, error) {
	owner, err := s.identity.Resolve(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	view := &FavoritesView{Role: owner.Role}
	if owner.Role == models.RoleFounder {
		view.Investors = make([]models.Investor, 0, len(owner.Founder.Favorites))
		for _, id := range owner.Founder.Favorites {
			if investor, ok := s.investorRepo.FindByID(ctx, id); ok {
				view.Investors = append(view.Investors, *investor)
			}
		}
	} else {
		view.Founders = make([]models.Founder, 0, len(owner.Investor.Favorites))
		for _, id := range owner.Investor.Favorites {
			if founder, ok := s.founderRepo.FindByID(ctx, id); ok {
				view.Founders = append(view.Founders, *founder)
			}
		}
	}
	return view, nil
}

func (s *FavoriteService) mutate(ctx context.Context, ownerEmail string, apply func([]string) []string) error {
	owner, err := s.identity.Resolve(ctx, ownerEmail)
	if err != nil {
		return err
	}

	switch owner.Role {
	case models.RoleFounder:
		founders := s.founderRepo.GetAll(ctx)
		for i := range founders {
			if founders[i].ID == owner.Founder.ID {
				founders[i].Favorites = apply(founders[i].Favorites)
				return s.founderRepo.ReplaceAll(ctx, founders)
			}
		}
	case models.RoleInvestor:
		investors := s.investorRepo.GetAll(ctx)
		for i := range investors {
			if investors[i].ID == owner.Investor.ID {
				investors[i].Favorites = apply(investors[i].Favorites)
				return s.investorRepo.ReplaceAll(ctx, investors)
			}
		}
	}

	logrus.WithField("email", ownerEmail).Error("Favorites owner record disappeared during update")
	return fmt.Errorf("account record not found")
}

func appendIfMissing(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

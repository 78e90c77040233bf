package services

import (
	"context"
	"strings"

	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
)

// MatchFilter narrows the match browser. Empty fields match everything;
// Query is a case-insensitive substring search over the profile text.
type MatchFilter struct {
	Industry string
	Stage    string
	Location string
	Query    string
}

// MatchService backs the filterable match-making browser. Suspended
// profiles are never shown.
type MatchService struct {
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
}

func NewMatchService(founderRepo *repository.FounderRepository, investorRepo *repository.InvestorRepository) *MatchService {
	return &MatchService{
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
	}
}

// BrowseFounders returns active founders matching the filter.
func (s *MatchService) BrowseFounders(ctx context.Context, filter MatchFilter) []models.Founder {
	matched := []models.Founder{}
	for _, f := range s.founderRepo.GetAll(ctx) {
		if f.Status != models.StatusActive {
			continue
		}
		if filter.Industry != "" && !strings.EqualFold(f.Industry, filter.Industry) {
			continue
		}
		if filter.Stage != "" && !strings.EqualFold(f.Stage, filter.Stage) {
			continue
		}
		if filter.Location != "" && !containsFold(f.Location, filter.Location) {
			continue
		}
		if filter.Query != "" && !anyContainsFold(filter.Query, f.Name, f.Company, f.Industry, f.Description) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// BrowseInvestors returns active investors matching the filter. Industry
// and Stage match against the investor's lists.
func (s *MatchService) BrowseInvestors(ctx context.Context, filter MatchFilter) []models.Investor {
	matched := []models.Investor{}
	for _, inv := range s.investorRepo.GetAll(ctx) {
		if inv.Status != models.StatusActive {
			continue
		}
		if filter.Industry != "" && !containsAnyFold(inv.Industries, filter.Industry) {
			continue
		}
		if filter.Stage != "" && !containsAnyFold(inv.Stages, filter.Stage) {
			continue
		}
		if filter.Location != "" && !containsFold(inv.Location, filter.Location) {
			continue
		}
		if filter.Query != "" && !anyContainsFold(filter.Query, inv.Name, inv.Firm, inv.Bio) {
			continue
		}
		matched = append(matched, inv)
	}
	return matched
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if containsFold(h, needle) {
			return true
		}
	}
	return false
}

func containsAnyFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}

package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/repository"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ProfileService handles founder and investor applications, profile
// edits, and the admin moderation operations.
type ProfileService struct {
	founderRepo  *repository.FounderRepository
	investorRepo *repository.InvestorRepository
}

func NewProfileService(founderRepo *repository.FounderRepository, investorRepo *repository.InvestorRepository) *ProfileService {
	return &ProfileService{
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
	}
}

// SubmitFounderApplication validates and stores a new founder profile.
func (s *ProfileService) SubmitFounderApplication(ctx context.Context, founder *models.Founder) (*models.Founder, error) {
	logrus.WithField("email", founder.Email).Info("Submitting founder application")

	if founder.Name == "" || founder.Email == "" || founder.Company == "" {
		return nil, fmt.Errorf("missing required founder fields")
	}
	if !emailRegex.MatchString(founder.Email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if err := s.requireUniqueEmail(ctx, founder.Email); err != nil {
		return nil, err
	}

	founder.ID = uuid.NewString()
	founder.Status = models.StatusActive
	founder.Favorites = []string{}
	founder.CreatedAt = time.Now()

	founders := s.founderRepo.GetAll(ctx)
	founders = append(founders, *founder)
	if err := s.founderRepo.ReplaceAll(ctx, founders); err != nil {
		return nil, fmt.Errorf("failed to save founder application: %v", err)
	}

	logrus.WithField("founderID", founder.ID).Info("Founder application accepted")
	return founder, nil
}

// SubmitInvestorApplication validates and stores a new investor profile.
func (s *ProfileService) SubmitInvestorApplication(ctx context.Context, investor *models.Investor) (*models.Investor, error) {
	logrus.WithField("email", investor.Email).Info("Submitting investor application")

	if investor.Name == "" || investor.Email == "" || investor.Firm == "" {
		return nil, fmt.Errorf("missing required investor fields")
	}
	if !emailRegex.MatchString(investor.Email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if err := s.requireUniqueEmail(ctx, investor.Email); err != nil {
		return nil, err
	}

	investor.ID = uuid.NewString()
	investor.Status = models.StatusActive
	investor.Favorites = []string{}
	investor.CreatedAt = time.Now()

	investors := s.investorRepo.GetAll(ctx)
	investors = append(investors, *investor)
	if err := s.investorRepo.ReplaceAll(ctx, investors); err != nil {
		return nil, fmt.Errorf("failed to save investor application: %v", err)
	}

	logrus.WithField("investorID", investor.ID).Info("Investor application accepted")
	return investor, nil
}

// UpdateFounderProfile replaces the profile fields of the founder with
// the given email. Identity, status and favorites are preserved.
func (s *ProfileService) UpdateFounderProfile(ctx context.Context, updated models.Founder) (*models.Founder, error) {
	founders := s.founderRepo.GetAll(ctx)
	for i := range founders {
		if equalEmail(founders[i].Email, updated.Email) {
			updated.ID = founders[i].ID
			updated.Email = founders[i].Email
			updated.Status = founders[i].Status
			updated.Favorites = founders[i].Favorites
			updated.CreatedAt = founders[i].CreatedAt
			founders[i] = updated
			if err := s.founderRepo.ReplaceAll(ctx, founders); err != nil {
				return nil, fmt.Errorf("failed to update founder: %v", err)
			}
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("no account found with this email")
}

// UpdateInvestorProfile replaces the profile fields of the investor with
// the given email. Identity, status and favorites are preserved.
func (s *ProfileService) UpdateInvestorProfile(ctx context.Context, updated models.Investor) (*models.Investor, error) {
	investors := s.investorRepo.GetAll(ctx)
	for i := range investors {
		if equalEmail(investors[i].Email, updated.Email) {
			updated.ID = investors[i].ID
			updated.Email = investors[i].Email
			updated.Status = investors[i].Status
			updated.Favorites = investors[i].Favorites
			updated.CreatedAt = investors[i].CreatedAt
			investors[i] = updated
			if err := s.investorRepo.ReplaceAll(ctx, investors); err != nil {
				return nil, fmt.Errorf("failed to update investor: %v", err)
			}
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("no account found with this email")
}

// SetFounderStatus toggles a founder between active and suspended.
func (s *ProfileService) SetFounderStatus(ctx context.Context, id, status string) (*models.Founder, error) {
	if status != models.StatusActive && status != models.StatusSuspended {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	founders := s.founderRepo.GetAll(ctx)
	for i := range founders {
		if founders[i].ID == id {
			founders[i].Status = status
			if err := s.founderRepo.ReplaceAll(ctx, founders); err != nil {
				return nil, fmt.Errorf("failed to update founder status: %v", err)
			}
			founder := founders[i]
			return &founder, nil
		}
	}
	return nil, fmt.Errorf("founder not found")
}

// SetInvestorStatus toggles an investor between active and suspended.
func (s *ProfileService) SetInvestorStatus(ctx context.Context, id, status string) (*models.Investor, error) {
	if status != models.StatusActive && status != models.StatusSuspended {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	investors := s.investorRepo.GetAll(ctx)
	for i := range investors {
		if investors[i].ID == id {
			investors[i].Status = status
			if err := s.investorRepo.ReplaceAll(ctx, investors); err != nil {
				return nil, fmt.Errorf("failed to update investor status: %v", err)
			}
			investor := investors[i]
			return &investor, nil
		}
	}
	return nil, fmt.Errorf("investor not found")
}

// DeleteFounder removes the record entirely. Favorites lists pointing at
// the deleted id are left dangling; readers tolerate that.
func (s *ProfileService) DeleteFounder(ctx context.Context, id string) error {
	founders := s.founderRepo.GetAll(ctx)
	remaining := make([]models.Founder, 0, len(founders))
	for _, f := range founders {
		if f.ID != id {
			remaining = append(remaining, f)
		}
	}
	if len(remaining) == len(founders) {
		return fmt.Errorf("founder not found")
	}
	if err := s.founderRepo.ReplaceAll(ctx, remaining); err != nil {
		return fmt.Errorf("failed to delete founder: %v", err)
	}
	logrus.WithField("founderID", id).Info("Founder deleted")
	return nil
}

// DeleteInvestor removes the record entirely.
func (s *ProfileService) DeleteInvestor(ctx context.Context, id string) error {
	investors := s.investorRepo.GetAll(ctx)
	remaining := make([]models.Investor, 0, len(investors))
	for _, inv := range investors {
		if inv.ID != id {
			remaining = append(remaining, inv)
		}
	}
	if len(remaining) == len(investors) {
		return fmt.Errorf("investor not found")
	}
	if err := s.investorRepo.ReplaceAll(ctx, remaining); err != nil {
		return fmt.Errorf("failed to delete investor: %v", err)
	}
	logrus.WithField("investorID", id).Info("Investor deleted")
	return nil
}

func (s *ProfileService) requireUniqueEmail(ctx context.Context, email string) error {
	if _, ok := s.founderRepo.FindByEmail(ctx, email); ok {
		return fmt.Errorf("email already in use")
	}
	if _, ok := s.investorRepo.FindByEmail(ctx, email); ok {
		return fmt.Errorf("email already in use")
	}
	return nil
}

func equalEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}

package repository

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/storage"
)

const investorsCollection = "investors"

type InvestorRepository struct {
	store *storage.Store
}

func NewInvestorRepository(store *storage.Store) *InvestorRepository {
	return &InvestorRepository{store: store}
}

// GetAll returns the full investor collection in storage order. Read
// failures degrade to an empty collection and are only logged.
func (r *InvestorRepository) GetAll(ctx context.Context) []models.Investor {
	var investors []models.Investor
	if err := r.store.Read(investorsCollection, &investors); err != nil {
		logrus.WithError(err).Error("Failed to read investors collection")
		return []models.Investor{}
	}
	if investors == nil {
		return []models.Investor{}
	}
	return investors
}

// ReplaceAll overwrites the entire investor collection.
func (r *InvestorRepository) ReplaceAll(ctx context.Context, investors []models.Investor) error {
	if investors == nil {
		investors = []models.Investor{}
	}
	return r.store.Replace(investorsCollection, investors)
}

func (r *InvestorRepository) FindByEmail(ctx context.Context, email string) (*models.Investor, bool) {
	for _, inv := range r.GetAll(ctx) {
		if strings.EqualFold(inv.Email, email) {
			investor := inv
			return &investor, true
		}
	}
	return nil, false
}

func (r *InvestorRepository) FindByID(ctx context.Context, id string) (*models.Investor, bool) {
	for _, inv := range r.GetAll(ctx) {
		if inv.ID == id {
			investor := inv
			return &investor, true
		}
	}
	return nil, false
}

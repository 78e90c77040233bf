package repository

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/venturelink/venturelink/internal/models"
	"github.com/venturelink/venturelink/internal/storage"
)

const foundersCollection = "founders"

type FounderRepository struct {
	store *storage.Store
}

func NewFounderRepository(store *storage.Store) *FounderRepository {
	return &FounderRepository{store: store}
}

// GetAll returns the full founder collection in storage order. Read
// failures degrade to an empty collection and are only logged.
func (r *FounderRepository) GetAll(ctx context.Context) []models.Founder {
	var founders []models.Founder
	if err := r.store.Read(foundersCollection, &founders); err != nil {
		logrus.WithError(err).Error("Failed to read founders collection")
		return []models.Founder{}
	}
	if founders == nil {
		return []models.Founder{}
	}
	return founders
}

// ReplaceAll overwrites the entire founder collection.
func (r *FounderRepository) ReplaceAll(ctx context.Context, founders []models.Founder) error {
	if founders == nil {
		founders = []models.Founder{}
	}
	return r.store.Replace(foundersCollection, founders)
}

// FindByEmail returns the first founder with a matching email, scanning
// in storage order.
func (r *FounderRepository) FindByEmail(ctx context.Context, email string) (*models.Founder, bool) {
	for _, f := range r.GetAll(ctx) {
		if strings.EqualFold(f.Email, email) {
			founder := f
			return &founder, true
		}
	}
	return nil, false
}

func (r *FounderRepository) FindByID(ctx context.Context, id string) (*models.Founder, bool) {
	for _, f := range r.GetAll(ctx) {
		if f.ID == id {
			founder := f
			return &founder, true
		}
	}
	return nil, false
}

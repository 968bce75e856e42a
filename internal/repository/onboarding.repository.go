package repository

import (
	"swasthprameh/internal/models"

	"gorm.io/gorm"
)

type OnboardingRepository interface {
	Upsert(onboarding *models.Onboarding) error
	FindByUserID(userID uint) (*models.Onboarding, error)
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db}
}

// Upsert creates the onboarding row on first completion and replaces it when
// onboarding is re-run. One row per user.
func (r *onboardingRepository) Upsert(onboarding *models.Onboarding) error {
	var existing models.Onboarding
	err := r.db.Where("user_id = ?", onboarding.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(onboarding).Error
	}
	if err != nil {
		return err
	}

	onboarding.ID = existing.ID
	onboarding.CreatedAt = existing.CreatedAt
	return r.db.Save(onboarding).Error
}

func (r *onboardingRepository) FindByUserID(userID uint) (*models.Onboarding, error) {
	var onboarding models.Onboarding
	err := r.db.Where("user_id = ?", userID).First(&onboarding).Error
	if err != nil {
		return nil, err
	}
	return &onboarding, nil
}

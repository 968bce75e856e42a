package repository

import (
	"swasthprameh/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindAllByUserID(userID uint) ([]models.Feedback, error)
	ExistsForUserAndPlan(userID uint, planID *uint) (bool, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindAllByUserID(userID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}

// ExistsForUserAndPlan backs the one-feedback-per-(user, plan) invariant.
func (r *feedbackRepository) ExistsForUserAndPlan(userID uint, planID *uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Feedback{}).Where("user_id = ?", userID)
	if planID != nil {
		query = query.Where("plan_id = ?", *planID)
	} else {
		query = query.Where("plan_id IS NULL")
	}
	err := query.Count(&count).Error
	return count > 0, err
}

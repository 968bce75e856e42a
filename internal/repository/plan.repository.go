package repository

import (
	"swasthprameh/internal/models"

	"gorm.io/gorm"
)

// PlanRepository is insert-only: plans are never updated in place, each
// generation supersedes the previous one by creation time.
type PlanRepository interface {
	SavePlan(plan *models.Plan) error
	GetPlanByID(id uint) (*models.Plan, error)
	GetPlansByUserID(userID uint) ([]models.Plan, error)
	GetLatestPlanByUserID(userID uint) (*models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db}
}

func (r *planRepository) SavePlan(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) GetPlanByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetPlansByUserID(userID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) GetLatestPlanByUserID(userID uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

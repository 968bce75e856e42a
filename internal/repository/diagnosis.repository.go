package repository

import (
	"swasthprameh/internal/models"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	SaveDiagnosis(diagnosis *models.Diagnosis) error
	GetDiagnosisByID(id uint) (*models.Diagnosis, error)
	GetLatestDiagnosisByUserID(userID uint) (*models.Diagnosis, error)
}

type diagnosisRepository struct {
	db *gorm.DB
}

func NewDiagnosisRepository(db *gorm.DB) DiagnosisRepository {
	return &diagnosisRepository{db}
}

func (r *diagnosisRepository) SaveDiagnosis(diagnosis *models.Diagnosis) error {
	return r.db.Create(diagnosis).Error
}

func (r *diagnosisRepository) GetDiagnosisByID(id uint) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	err := r.db.First(&diagnosis, id).Error
	if err != nil {
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) GetLatestDiagnosisByUserID(userID uint) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&diagnosis).Error
	if err != nil {
		return nil, err
	}
	return &diagnosis, nil
}

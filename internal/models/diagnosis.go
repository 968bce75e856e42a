package models

import (
	"time"

	"gorm.io/gorm"
)

// Diagnosis stores one ML-service prediction keyed by user and input feature
// vector. The ml_output blob is opaque to this service; persistence is
// best-effort and never blocks the caller.
type Diagnosis struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	InputFeatures string         `gorm:"type:jsonb" json:"input_features"`
	MLOutput      string         `gorm:"type:jsonb" json:"ml_output"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	PlanID    *uint          `json:"plan_id,omitempty" example:"2"`
	Score     int            `gorm:"check:score >= 1 AND score <= 5" json:"score" binding:"required,min=1,max=5" example:"4"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty" example:"The meal suggestions were easy to follow."`
}

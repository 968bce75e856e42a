package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                  uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt           time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt           time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	FullName            string         `json:"full_name" example:"Asha Verma"`
	Email               string         `gorm:"unique" json:"email" example:"asha@example.com"`
	Password            string         `json:"-"`
	Phone               string         `json:"phone,omitempty" example:"+91-9876543210"`
	OnboardingCompleted bool           `gorm:"default:false" json:"onboarding_completed" example:"false"`
	IsAdmin             bool           `gorm:"default:false" json:"is_admin" example:"false"`
}

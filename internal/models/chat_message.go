package models

import (
	"time"

	"gorm.io/gorm"
)

// Sender roles for chat messages.
const (
	SenderUser      = "user"
	SenderAdmin     = "admin"
	SenderAssistant = "assistant"
)

// ChatMessage rows are append-only; ordering within a conversation is by
// monotonically increasing created_at.
type ChatMessage struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID     uint           `gorm:"index" json:"user_id" example:"1"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	AdminID    *uint          `json:"admin_id,omitempty" example:"7"`
	Message    string         `gorm:"type:text" json:"message" binding:"required"`
	SenderType string         `gorm:"check:sender_type IN ('user','admin','assistant')" json:"sender_type" example:"user"`
	IsRead     bool           `gorm:"default:false" json:"is_read" example:"false"`
}

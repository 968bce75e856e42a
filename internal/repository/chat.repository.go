package repository

import (
	"swasthprameh/internal/models"

	"gorm.io/gorm"
)

// ChatRepository is append-only; messages are never edited or deleted and
// are always read back in creation order.
type ChatRepository interface {
	Append(message *models.ChatMessage) error
	FindByUserID(userID uint, limit int) ([]models.ChatMessage, error)
	MarkRead(userID uint, senderType string) error
	CountUnread(userID uint, senderType string) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db}
}

func (r *chatRepository) Append(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *chatRepository) FindByUserID(userID uint, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	query := r.db.Where("user_id = ?", userID).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}

func (r *chatRepository) MarkRead(userID uint, senderType string) error {
	return r.db.Model(&models.ChatMessage{}).
		Where("user_id = ? AND sender_type = ? AND is_read = ?", userID, senderType, false).
		Update("is_read", true).Error
}

func (r *chatRepository) CountUnread(userID uint, senderType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatMessage{}).
		Where("user_id = ? AND sender_type = ? AND is_read = ?", userID, senderType, false).
		Count(&count).Error
	return count, err
}

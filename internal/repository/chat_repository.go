package repository

import (
	"anchorpoint_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

// FindLatestSessionByUserID returns the user's most recent session with its
// messages in send order, or gorm.ErrRecordNotFound.
func (r *ChatRepository) FindLatestSessionByUserID(userID uint) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.DB.Where("user_id = ?", userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_at asc")
		}).
		Order("updated_at desc").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatRepository) CreateSession(session *model.ChatSession) error {
	return r.DB.Create(session).Error
}

func (r *ChatRepository) AppendMessage(message *model.ChatMessage) error {
	if err := r.DB.Create(message).Error; err != nil {
		return err
	}
	// Bump the session so the latest-session lookup stays correct.
	return r.DB.Model(&model.ChatSession{}).
		Where("id = ?", message.SessionID).
		Update("updated_at", message.SentAt).
		Error
}

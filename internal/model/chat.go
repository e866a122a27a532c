package model

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatSession groups the coaching conversation of one user.
type ChatSession struct {
	BaseModel
	UserID   uint          `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Messages []ChatMessage `gorm:"foreignKey:SessionID" json:"messages"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatMessage struct {
	BaseModel
	SessionID uint      `gorm:"index;type:bigint unsigned;not null" json:"sessionId"`
	Role      ChatRole  `gorm:"type:enum('user','assistant');not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SentAt    time.Time `gorm:"not null" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

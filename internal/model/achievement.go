package model

import "time"

// Achievement is a badge earned by a user. The unique index on
// (user_id, title) is the backstop for concurrent progress submissions
// racing on the same rule: the second insert is rejected by the database
// and treated as a no-op by the repository.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex:idx_user_achievement;type:bigint unsigned;not null" json:"userId"`
	Title       string    `gorm:"uniqueIndex:idx_user_achievement;size:100;not null" json:"title"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	IconURL     string    `gorm:"size:255" json:"iconUrl"`
	EarnedAt    time.Time `gorm:"not null" json:"earnedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

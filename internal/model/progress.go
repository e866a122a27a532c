package model

import "time"

// ProgressEntry is one completed activity with mood-before/after ratings.
// Entries are immutable once created.
// swagger:model ProgressEntry
type ProgressEntry struct {
	BaseModel
	UserID      uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	ActivityID  *uint     `gorm:"index;type:bigint unsigned" json:"activityId"`
	Activity    *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	MoodBefore  int       `gorm:"not null" json:"moodBefore"` // 1-10
	MoodAfter   int       `gorm:"not null" json:"moodAfter"`  // 1-10
	Notes       string    `gorm:"type:text" json:"notes"`
	Duration    int       `json:"duration"` // actual minutes spent
	CompletedAt time.Time `gorm:"not null;index" json:"completedAt"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

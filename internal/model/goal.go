package model

import "time"

// swagger:model Goal
type Goal struct {
	BaseModel
	UserID       uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `gorm:"size:50;not null" json:"category"`
	TargetValue  int        `gorm:"not null" json:"targetValue"`
	CurrentValue int        `gorm:"default:0" json:"currentValue"`
	Unit         string     `gorm:"size:30;not null" json:"unit"`
	Deadline     *time.Time `json:"deadline"`
	IsCompleted  bool       `gorm:"default:false" json:"isCompleted"`
}

func (Goal) TableName() string {
	return "goals"
}

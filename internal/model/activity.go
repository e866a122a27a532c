package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type ActivityDifficulty string

const (
	DifficultyBeginner     ActivityDifficulty = "beginner"
	DifficultyIntermediate ActivityDifficulty = "intermediate"
	DifficultyAdvanced     ActivityDifficulty = "advanced"
)

// StringList stores a JSON array of strings in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("string list: unsupported column type")
	}
	return json.Unmarshal(bytes, l)
}

// Activity is a guided wellness activity in the catalog.
// swagger:model Activity
type Activity struct {
	BaseModel
	Title        string             `gorm:"size:255;not null" json:"title"`
	Description  string             `gorm:"type:text;not null" json:"description"`
	Category     string             `gorm:"size:50;not null;index" json:"category"`
	Duration     int                `gorm:"default:5" json:"duration"` // minutes
	Difficulty   ActivityDifficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	ImageURL     string             `gorm:"size:255" json:"imageUrl"`
	Instructions string             `gorm:"type:text" json:"instructions"`
	Benefits     StringList         `gorm:"type:json" json:"benefits"`
	Tags         StringList         `gorm:"type:json" json:"tags"`
	IsActive     bool               `gorm:"default:true" json:"isActive"`
}

func (Activity) TableName() string {
	return "activities"
}

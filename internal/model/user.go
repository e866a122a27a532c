package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PersonalityType is one of the four coaching-style categories assigned by
// the quiz, or "balanced" before any quiz has been submitted.
type PersonalityType string

const (
	PersonalityBalanced         PersonalityType = "balanced"
	PersonalityCalmSeeker       PersonalityType = "calm-seeker"
	PersonalitySocialConnector  PersonalityType = "social-connector"
	PersonalityCreativeExplorer PersonalityType = "creative-explorer"
	PersonalityActiveEnergizer  PersonalityType = "active-energizer"
)

type ReminderTimes struct {
	DailyCheckin    string `json:"dailyCheckin"`
	Mindfulness     string `json:"mindfulness"`
	ActivityPrompts string `json:"activityPrompts"`
}

type Preferences struct {
	Notifications bool          `json:"notifications"`
	DarkMode      bool          `json:"darkMode"`
	ReminderTimes ReminderTimes `json:"reminderTimes"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		DarkMode:      false,
		ReminderTimes: ReminderTimes{
			DailyCheckin:    "09:00",
			Mindfulness:     "13:00",
			ActivityPrompts: "18:00",
		},
	}
}

func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = DefaultPreferences()
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("preferences: unsupported column type")
	}
	return json.Unmarshal(bytes, p)
}

// swagger:model User
type User struct {
	BaseModel
	Name            string          `gorm:"size:100;not null" json:"name"`
	Email           string          `gorm:"size:100;unique;not null" json:"email"`
	Password        string          `gorm:"size:100;not null" json:"-"`
	PersonalityType PersonalityType `gorm:"size:30;default:'balanced'" json:"personalityType"`
	Preferences     Preferences     `gorm:"type:json" json:"preferences"`
	Avatar          string          `gorm:"size:255" json:"avatar"`
	LastLogin       time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

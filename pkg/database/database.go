package database

import (
	"anchorpoint_backend/internal/config"
	"anchorpoint_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.ProgressEntry{},
		&model.Goal{},
		&model.Achievement{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.ChatSession{},
		&model.ChatMessage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedActivities(db)

	return db, nil
}

// seedActivities inserts the starter catalog on an empty database.
func seedActivities(db *gorm.DB) {
	var count int64
	db.Model(&model.Activity{}).Count(&count)
	if count > 0 {
		return
	}

	starter := []model.Activity{
		{
			Title:        "5-Minute Box Breathing",
			Description:  "A simple technique to calm your nervous system.",
			Category:     "breathing",
			Duration:     5,
			Instructions: "Breathe in for 4 counts, hold for 4 counts, breathe out for 4 counts, hold for 4 counts. Repeat.",
			Benefits:     model.StringList{"Reduces stress", "Improves focus", "Calms nervous system"},
			Tags:         model.StringList{"beginner", "quick", "stress-relief"},
			IsActive:     true,
		},
		{
			Title:        "Mindful Body Scan",
			Description:  "Tune into your body's sensations without judgment.",
			Category:     "mindfulness",
			Duration:     10,
			Instructions: "Lie down comfortably and slowly scan your body from head to toe, noticing sensations.",
			Benefits:     model.StringList{"Body awareness", "Stress reduction", "Better sleep"},
			Tags:         model.StringList{"relaxation", "body-awareness", "sleep"},
			IsActive:     true,
		},
		{
			Title:        "Three Good Things",
			Description:  "Reflect on three positive moments from your day.",
			Category:     "gratitude",
			Duration:     5,
			Instructions: "Write down three things that went well today, no matter how small.",
			Benefits:     model.StringList{"Positive mindset", "Gratitude practice", "Mood improvement"},
			Tags:         model.StringList{"gratitude", "journaling", "positivity"},
			IsActive:     true,
		},
		{
			Title:        "Mindful Walking",
			Description:  "Connect with your surroundings and your breath.",
			Category:     "movement",
			Duration:     15,
			Instructions: "Walk slowly and mindfully, paying attention to each step and your surroundings.",
			Benefits:     model.StringList{"Physical activity", "Mindfulness", "Nature connection"},
			Tags:         model.StringList{"movement", "mindfulness", "outdoor"},
			IsActive:     true,
		},
	}

	for _, a := range starter {
		db.Create(&a)
	}
	log.Println("Starter activities created")
}

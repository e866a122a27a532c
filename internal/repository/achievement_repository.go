package repository

import (
	"anchorpoint_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&achievements).Error
	return achievements, err
}

// FindTitlesByUserID returns the set of titles the user currently holds.
func (r *AchievementRepository) FindTitlesByUserID(userID uint) (map[string]bool, error) {
	var titles []string
	err := r.DB.Model(&model.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(titles))
	for _, t := range titles {
		held[t] = true
	}
	return held, nil
}

// CreateIgnoreDuplicate inserts an achievement; a duplicate (user_id, title)
// from a concurrent evaluation is dropped by the unique index, not surfaced.
func (r *AchievementRepository) CreateIgnoreDuplicate(achievement *model.Achievement) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(achievement).Error
}

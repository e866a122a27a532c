package repository

import (
	"anchorpoint_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(entry *model.ProgressEntry) error {
	return r.DB.Create(entry).Error
}

// FindByUserID returns the user's full history, most recent first, with the
// linked activity preloaded.
func (r *ProgressRepository) FindByUserID(userID uint) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Where("user_id = ?", userID).
		Preload("Activity").
		Order("completed_at desc").
		Find(&entries).Error
	return entries, err
}

// FindRecentByUserID returns up to limit most recent entries, without the
// activity join. Used to build the coaching chat context.
func (r *ProgressRepository) FindRecentByUserID(userID uint, limit int) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

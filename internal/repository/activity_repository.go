package repository

import (
	"anchorpoint_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// FindActive lists active activities, newest first, optionally filtered by
// category and a title/description search term.
func (r *ActivityRepository) FindActive(category, search string) ([]model.Activity, error) {
	query := r.DB.Where("is_active = ?", true)

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if search != "" {
		term := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", term, term)
	}

	var activities []model.Activity
	err := query.Order("created_at desc").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.First(&activity, id).Error
	return &activity, err
}

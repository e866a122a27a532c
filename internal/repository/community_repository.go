package repository

import (
	"anchorpoint_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) FindLatest(limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Likes").
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("User").First(&post, id).Error
	return &post, err
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindLike(postID, userID uint) (*model.PostLike, error) {
	var like model.PostLike
	err := r.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	return &like, err
}

func (r *PostRepository) CreateLike(like *model.PostLike) error {
	return r.DB.Create(like).Error
}

func (r *PostRepository) DeleteLike(like *model.PostLike) error {
	return r.DB.Unscoped().Delete(like).Error
}

func (r *PostRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *PostRepository) CreateComment(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

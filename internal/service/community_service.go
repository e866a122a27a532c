package service

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/repository"
	"anchorpoint_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	feedCacheKey = "community:feed"
	feedCacheTTL = 60 * time.Second
	feedLimit    = 20
)

// PostView is a post shaped for the feed; anonymous posts carry no author
// identity beyond the "Anonymous" label.
type PostView struct {
	ID          uint          `json:"id"`
	AuthorName  string        `json:"authorName"`
	Content     string        `json:"content"`
	IsAnonymous bool          `json:"isAnonymous"`
	Tags        []string      `json:"tags"`
	LikeCount   int           `json:"likeCount"`
	LikedByMe   bool          `json:"likedByMe"`
	Comments    []CommentView `json:"comments"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CommentView struct {
	ID         uint      `json:"id"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// cachedPost is the Redis feed entry: the viewer-independent view plus the
// liker IDs needed to compute LikedByMe per request.
type cachedPost struct {
	View        PostView `json:"view"`
	LikeUserIDs []uint   `json:"likeUserIds"`
}

type CommunityService struct {
	PostRepo *repository.PostRepository
	Redis    *redis.Client
}

func NewCommunityService(postRepo *repository.PostRepository, rdb *redis.Client) *CommunityService {
	return &CommunityService{
		PostRepo: postRepo,
		Redis:    rdb,
	}
}

type PostRequest struct {
	Content     string   `json:"content" binding:"required"`
	IsAnonymous bool     `json:"isAnonymous"`
	Tags        []string `json:"tags"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// GetFeed returns the latest posts. The feed itself is cached briefly in
// Redis; the viewer-specific LikedByMe flag is computed per request.
func (s *CommunityService) GetFeed(ctx context.Context, viewerID uint) ([]PostView, error) {
	entries, err := s.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(entries))
	for _, e := range entries {
		view := e.View
		for _, id := range e.LikeUserIDs {
			if id == viewerID {
				view.LikedByMe = true
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, userID uint, req PostRequest) (*model.Post, error) {
	post := &model.Post{
		UserID:      userID,
		Content:     req.Content,
		IsAnonymous: req.IsAnonymous,
		Tags:        req.Tags,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	return post, nil
}

// ToggleLike likes the post for the user, or removes the like if one is
// already there. Returns the resulting like state and count.
func (s *CommunityService) ToggleLike(ctx context.Context, postID, userID uint) (bool, int64, error) {
	if _, err := s.PostRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, util.ErrPostNotFound
		}
		return false, 0, err
	}

	liked := false
	existing, err := s.PostRepo.FindLike(postID, userID)
	switch {
	case err == nil:
		if err := s.PostRepo.DeleteLike(existing); err != nil {
			return false, 0, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.PostRepo.CreateLike(&model.PostLike{PostID: postID, UserID: userID}); err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	count, err := s.PostRepo.CountLikes(postID)
	if err != nil {
		return false, 0, err
	}

	s.invalidateFeed(ctx)
	return liked, count, nil
}

func (s *CommunityService) AddComment(ctx context.Context, postID, userID uint, req CommentRequest) (*model.Comment, error) {
	if _, err := s.PostRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.PostRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	return comment, nil
}

func (s *CommunityService) loadFeed(ctx context.Context) ([]cachedPost, error) {
	if s.Redis != nil {
		if data, err := s.Redis.Get(ctx, feedCacheKey).Bytes(); err == nil {
			var entries []cachedPost
			if err := json.Unmarshal(data, &entries); err == nil {
				return entries, nil
			}
		}
	}

	posts, err := s.PostRepo.FindLatest(feedLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]cachedPost, 0, len(posts))
	for i := range posts {
		entries = append(entries, toCachedPost(&posts[i]))
	}

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, feedCacheKey, data, feedCacheTTL)
		}
	}
	return entries, nil
}

func (s *CommunityService) invalidateFeed(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, feedCacheKey)
	}
}

func toCachedPost(post *model.Post) cachedPost {
	entry := cachedPost{
		View: PostView{
			ID:          post.ID,
			AuthorName:  authorName(post.User, post.IsAnonymous),
			Content:     post.Content,
			IsAnonymous: post.IsAnonymous,
			Tags:        post.Tags,
			LikeCount:   len(post.Likes),
			CreatedAt:   post.CreatedAt,
		},
	}
	if entry.View.Tags == nil {
		entry.View.Tags = []string{}
	}

	entry.LikeUserIDs = make([]uint, 0, len(post.Likes))
	for _, like := range post.Likes {
		entry.LikeUserIDs = append(entry.LikeUserIDs, like.UserID)
	}

	entry.View.Comments = make([]CommentView, 0, len(post.Comments))
	for _, c := range post.Comments {
		entry.View.Comments = append(entry.View.Comments, CommentView{
			ID:         c.ID,
			AuthorName: authorName(c.User, false),
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		})
	}
	return entry
}

func authorName(user *model.User, anonymous bool) string {
	if anonymous {
		return "Anonymous"
	}
	if user == nil {
		return "Unknown"
	}
	return user.Name
}

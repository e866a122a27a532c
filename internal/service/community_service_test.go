package service

import (
	"anchorpoint_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCachedPostMasksAnonymousAuthor(t *testing.T) {
	author := &model.User{Name: "Ana"}
	post := &model.Post{
		UserID:      1,
		User:        author,
		Content:     "rough week",
		IsAnonymous: true,
	}

	entry := toCachedPost(post)

	assert.Equal(t, "Anonymous", entry.View.AuthorName)
	assert.True(t, entry.View.IsAnonymous)
	assert.NotContains(t, entry.View.AuthorName, "Ana")
}

func TestToCachedPostKeepsNamedAuthorAndComments(t *testing.T) {
	author := &model.User{Name: "Ana"}
	commenter := &model.User{Name: "Ben"}
	post := &model.Post{
		UserID:  1,
		User:    author,
		Content: "small win today",
		Tags:    model.StringList{"gratitude"},
		Likes: []model.PostLike{
			{PostID: 1, UserID: 2},
			{PostID: 1, UserID: 3},
		},
		Comments: []model.Comment{
			{PostID: 1, UserID: 2, User: commenter, Content: "nice!"},
		},
	}

	entry := toCachedPost(post)

	assert.Equal(t, "Ana", entry.View.AuthorName)
	assert.Equal(t, 2, entry.View.LikeCount)
	assert.ElementsMatch(t, []uint{2, 3}, entry.LikeUserIDs)
	require.Len(t, entry.View.Comments, 1)
	assert.Equal(t, "Ben", entry.View.Comments[0].AuthorName)
}

func TestToCachedPostNilCollections(t *testing.T) {
	entry := toCachedPost(&model.Post{UserID: 1, Content: "hi"})

	assert.Equal(t, "Unknown", entry.View.AuthorName)
	assert.NotNil(t, entry.View.Tags)
	assert.Empty(t, entry.View.Tags)
	assert.NotNil(t, entry.View.Comments)
	assert.Empty(t, entry.LikeUserIDs)
}

func TestAuthorName(t *testing.T) {
	user := &model.User{Name: "Ana"}

	assert.Equal(t, "Anonymous", authorName(user, true))
	assert.Equal(t, "Ana", authorName(user, false))
	assert.Equal(t, "Anonymous", authorName(nil, true))
	assert.Equal(t, "Unknown", authorName(nil, false))
}

package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// Feed godoc
// @Summary Community feed
// @Description Latest posts with comments and like counts; anonymous posts hide the author. Works with or without a token.
// @Tags community
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.PostView}
// @Router /api/community/posts [get]
func (c *CommunityController) Feed(ctx *gin.Context) {
	var viewerID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	posts, err := c.CommunityService.GetFeed(ctx.Request.Context(), viewerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, posts)
}

// CreatePost godoc
// @Summary Publish a post
// @Tags community
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.PostRequest true "Post content"
// @Success 201 {object} util.Response{data=model.Post}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.CommunityService.CreatePost(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, post)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags community
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Post ID"
// @Success 200 {object} util.Response{data=object} "Resulting like state and count"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/community/posts/{id}/like [post]
func (c *CommunityController) ToggleLike(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	liked, count, err := c.CommunityService.ToggleLike(ctx.Request.Context(), uint(postID), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"liked":     liked,
		"likeCount": count,
	})
}

// AddComment godoc
// @Summary Comment on a post
// @Tags community
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Post ID"
// @Param   body body service.CommentRequest true "Comment content"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/community/posts/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommunityService.AddComment(ctx.Request.Context(), uint(postID), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, comment)
}

package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Record godoc
// @Summary Record a completed activity
// @Description Saves the mood check-in and returns any achievements the submission unlocked
// @Tags progress
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ProgressRequest true "Progress entry"
// @Success 201 {object} util.Response{data=object} "Entry plus newly earned achievements"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/progress [post]
func (c *ProgressController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, earned, err := c.ProgressService.RecordProgress(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrActivityNotFound) {
			util.BadRequest(ctx, "unknown activity")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"entry":           entry,
		"newAchievements": earned,
	})
}

// List godoc
// @Summary Progress history
// @Description Returns the user's progress entries, most recent first
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ProgressEntry}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.ProgressService.GetUserProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

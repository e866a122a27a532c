package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// List godoc
// @Summary List active activities
// @Description Returns the activity catalog, optionally filtered by category and a title/description search term
// @Tags activities
// @Produce  json
// @Param   category query string false "Category filter, or 'all'"
// @Param   search query string false "Search term"
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/activities [get]
func (c *ActivityController) List(ctx *gin.Context) {
	category := ctx.Query("category")
	search := ctx.Query("search")

	activities, err := c.ActivityService.GetActivities(category, search)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}

// Recommended godoc
// @Summary Recommended activities for the current user
// @Description Filters the catalog by the user's personality type, capped at six results
// @Tags activities
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/activities/recommended [get]
func (c *ActivityController) Recommended(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activities, err := c.ActivityService.GetRecommended(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}

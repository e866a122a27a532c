package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// List godoc
// @Summary List the user's goals
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.GetUserGoals(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.GoalRequest true "Goal definition"
// @Success 201 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// UpdateProgress godoc
// @Summary Update goal progress
// @Description Sets the goal's current value; completion is derived from the target
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Goal ID"
// @Param   body body service.GoalProgressRequest true "New current value"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Goal not found"
// @Router /api/goals/{id}/progress [put]
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid goal id")
		return
	}

	var req service.GoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateProgress(claims.UserID, uint(goalID), req)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	UserService *service.UserService
}

func NewQuizController(userService *service.UserService) *QuizController {
	return &QuizController{UserService: userService}
}

// swagger:model QuizRequest
type QuizRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit personality quiz answers
// @Description Classifies the answers and stores the resulting personality type on the profile
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body QuizRequest true "Selected answer codes"
// @Success 200 {object} util.Response{data=object} "Assigned personality type"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	personality, err := c.UserService.SubmitQuiz(claims.UserID, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"personalityType": personality})
}

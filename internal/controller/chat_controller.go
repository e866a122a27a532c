package controller

import (
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send godoc
// @Summary Send a message to the wellness coach
// @Description Forwards the message to the AI coach with the user's recent progress and goals as context; a canned supportive reply is returned when the AI is unreachable
// @Tags chat
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ChatRequest true "User message"
// @Success 200 {object} util.Response{data=service.ChatReply}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/chat [post]
func (c *ChatController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.SendMessage(claims.UserID, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reply)
}

// History godoc
// @Summary Chat history
// @Description Messages of the user's latest session, oldest first; empty when no session exists
// @Tags chat
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.ChatService.GetHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, messages)
}

package controller

import (
	"anchorpoint_backend/internal/model"
	"anchorpoint_backend/internal/service"
	"anchorpoint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MiB

type UserController struct {
	UserService *service.UserService
	Storage     service.StorageProvider
}

func NewUserController(userService *service.UserService, storage service.StorageProvider) *UserController {
	return &UserController{
		UserService: userService,
		Storage:     storage,
	}
}

// UpdatePreferences godoc
// @Summary Update notification and display preferences
// @Tags users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.Preferences true "Preferences"
// @Success 200 {object} util.Response{data=model.Preferences}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/users/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var prefs model.Preferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdatePreferences(claims.UserID, prefs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, prefs)
}

// UploadAvatar godoc
// @Summary Upload a profile avatar
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   avatar formData file true "Avatar image"
// @Success 200 {object} util.Response{data=object} "Avatar URL"
// @Failure 400 {object} util.Response "Invalid upload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	if fileHeader.Size > maxAvatarSize {
		util.BadRequest(ctx, "avatar exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	objectName := service.ObjectName(fileHeader.Filename)
	url, err := c.Storage.Save(ctx.Request.Context(), objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"cinequiz_backend/internal/service"
	"cinequiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users   *service.UserService
	Storage *service.StorageService
}

func NewUserController(users *service.UserService, storage *service.StorageService) *UserController {
	return &UserController{Users: users, Storage: storage}
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.Users.UpdateProfile(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d_%d%s", user.UserID, time.Now().Unix(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	updated, err := c.Users.UpdateAvatar(user.UserID, url)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

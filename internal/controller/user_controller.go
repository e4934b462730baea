package controller

import (
	"errors"

	"nihongo_backend/internal/service"
	"nihongo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param role query string false "role filter"
// @Param search query string false "name/email search"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	users, total, err := c.UserService.ListUsers(page, limit, ctx.Query("role"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// GetUser godoc
// @Summary Get one user (admin)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetUserByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// UpdateUser godoc
// @Summary Update a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req service.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// Leaderboard godoc
// @Summary Top learners by points
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/users/leaderboard [get]
func (c *UserController) Leaderboard(ctx *gin.Context) {
	entries, err := c.UserService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

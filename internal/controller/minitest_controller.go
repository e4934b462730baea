package controller

import (
	"errors"

	"nihongo_backend/internal/service"
	"nihongo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MiniTestController struct {
	MiniTestService *service.MiniTestService
}

func NewMiniTestController(miniTestService *service.MiniTestService) *MiniTestController {
	return &MiniTestController{MiniTestService: miniTestService}
}

// CreateTest godoc
// @Summary Create a mini-test (admin)
// @Tags minitests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.MiniTest}
// @Router /api/admin/minitests [post]
func (c *MiniTestController) CreateTest(ctx *gin.Context) {
	var req service.MiniTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.MiniTestService.CreateTest(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, test)
}

// UpdateTest godoc
// @Summary Update a mini-test (admin)
// @Tags minitests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.MiniTest}
// @Router /api/admin/minitests/{id} [put]
func (c *MiniTestController) UpdateTest(ctx *gin.Context) {
	var req service.MiniTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.MiniTestService.UpdateTest(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, test)
}

// DeleteTest godoc
// @Summary Delete a mini-test (admin)
// @Tags minitests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/minitests/{id} [delete]
func (c *MiniTestController) DeleteTest(ctx *gin.Context) {
	if err := c.MiniTestService.DeleteTest(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ListTests godoc
// @Summary Browse published mini-tests
// @Tags minitests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/minitests [get]
func (c *MiniTestController) ListTests(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	claims := util.GetUserFromContext(ctx)
	publishedOnly := claims == nil || claims.Role != "admin"

	tests, total, err := c.MiniTestService.ListTests(page, limit, publishedOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: tests, Total: total, Page: page, Limit: limit})
}

// GetTest godoc
// @Summary Mini-test detail without answers
// @Tags minitests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/minitests/{id} [get]
func (c *MiniTestController) GetTest(ctx *gin.Context) {
	test, questions, err := c.MiniTestService.GetTestForStudent(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTestNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"test": test, "questions": questions})
}

// SubmitTest godoc
// @Summary Submit a mini-test attempt (retakes allowed, best score counts)
// @Tags minitests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/minitests/{id}/submit [post]
func (c *MiniTestController) SubmitTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitMiniTestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.MiniTestService.SubmitTest(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTestNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// ListMyResults godoc
// @Summary The learner's mini-test attempt history
// @Tags minitests
// @Produce json
// @Security ApiKeyAuth
// @Param testId query int false "filter by test"
// @Success 200 {object} util.Response
// @Router /api/minitests/results [get]
func (c *MiniTestController) ListMyResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.MiniTestService.ListMyResults(claims.UserID, util.MustParseUint(ctx.Query("testId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

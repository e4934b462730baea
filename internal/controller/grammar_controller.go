package controller

import (
	"errors"

	"nihongo_backend/internal/service"
	"nihongo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GrammarController struct {
	GrammarService *service.GrammarService
}

func NewGrammarController(grammarService *service.GrammarService) *GrammarController {
	return &GrammarController{GrammarService: grammarService}
}

// CreateLesson godoc
// @Summary Create a grammar lesson with questions (admin)
// @Tags grammar
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.GrammarLesson}
// @Router /api/admin/grammar/lessons [post]
func (c *GrammarController) CreateLesson(ctx *gin.Context) {
	var req service.GrammarLessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.GrammarService.CreateLesson(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a grammar lesson (admin)
// @Tags grammar
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.GrammarLesson}
// @Router /api/admin/grammar/lessons/{id} [put]
func (c *GrammarController) UpdateLesson(ctx *gin.Context) {
	var req service.GrammarLessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.GrammarService.UpdateLesson(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a grammar lesson (admin)
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/grammar/lessons/{id} [delete]
func (c *GrammarController) DeleteLesson(ctx *gin.Context) {
	if err := c.GrammarService.DeleteLesson(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ListLessons godoc
// @Summary Browse published grammar lessons
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Param jlptLevel query string false "N5..N1"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/grammar/lessons [get]
func (c *GrammarController) ListLessons(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	claims := util.GetUserFromContext(ctx)
	publishedOnly := claims == nil || claims.Role != "admin"

	lessons, total, err := c.GrammarService.ListLessons(page, limit, ctx.Query("jlptLevel"), publishedOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: lessons, Total: total, Page: page, Limit: limit})
}

// GetLesson godoc
// @Summary Lesson detail for the current learner
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/grammar/lessons/{id} [get]
func (c *GrammarController) GetLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.GrammarService.GetLessonForStudent(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrLessonNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// SubmitLesson godoc
// @Summary Submit answers for a lesson (one attempt per lesson)
// @Tags grammar
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "already submitted"
// @Router /api/grammar/lessons/{id}/submit [post]
func (c *GrammarController) SubmitLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitLessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GrammarService.SubmitLesson(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrLessonNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// GetMySubmission godoc
// @Summary The learner's submission for a lesson
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Submission}
// @Router /api/grammar/lessons/{id}/submission [get]
func (c *GrammarController) GetMySubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.GrammarService.GetMySubmission(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, sub)
}

// ListMySubmissions godoc
// @Summary All submissions by the current learner
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/grammar/submissions [get]
func (c *GrammarController) ListMySubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	subs, err := c.GrammarService.ListMySubmissions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// ListSubmissions godoc
// @Summary Submissions for one lesson (admin review table)
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "pending or feedbacked"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/grammar/lessons/{id}/submissions [get]
func (c *GrammarController) ListSubmissions(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	subs, total, err := c.GrammarService.ListSubmissions(util.MustParseUint(ctx.Param("id")), page, limit, ctx.Query("status"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: subs, Total: total, Page: page, Limit: limit})
}

// GiveFeedback godoc
// @Summary Move a submission from pending to feedbacked (admin)
// @Tags grammar
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Submission}
// @Router /api/admin/grammar/submissions/{submissionId}/feedback [patch]
func (c *GrammarController) GiveFeedback(ctx *gin.Context) {
	var req service.FeedbackReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.GrammarService.GiveFeedback(ctx.Param("submissionId"), req)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// DeleteSubmission godoc
// @Summary Delete a submission (owner or admin)
// @Tags grammar
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/grammar/submissions/{submissionId} [delete]
func (c *GrammarController) DeleteSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.GrammarService.DeleteSubmission(ctx.Param("submissionId"), claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

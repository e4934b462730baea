package controller

import (
	"nihongo_backend/internal/model"
	"nihongo_backend/internal/service"
	"nihongo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController serves the kanji, kana and vocabulary catalogs.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// ---- kanji ----

// swagger:model CreateKanjiRequest
type CreateKanjiRequest struct {
	Character      string `json:"character" binding:"required"`
	Onyomi         string `json:"onyomi"`
	Kunyomi        string `json:"kunyomi"`
	Meaning        string `json:"meaning" binding:"required"`
	Strokes        int    `json:"strokes"`
	JLPTLevel      string `json:"jlptLevel" binding:"omitempty,oneof=N5 N4 N3 N2 N1"`
	StrokeOrderURL string `json:"strokeOrderUrl"`
}

// CreateKanji godoc
// @Summary Add a kanji entry (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Kanji}
// @Router /api/admin/kanji [post]
func (c *ContentController) CreateKanji(ctx *gin.Context) {
	var req CreateKanjiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	k := &model.Kanji{
		Character:      req.Character,
		Onyomi:         req.Onyomi,
		Kunyomi:        req.Kunyomi,
		Meaning:        req.Meaning,
		Strokes:        req.Strokes,
		JLPTLevel:      req.JLPTLevel,
		StrokeOrderURL: req.StrokeOrderURL,
	}
	if err := c.ContentService.CreateKanji(k); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, k)
}

// ListKanji godoc
// @Summary Browse kanji
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param jlptLevel query string false "N5..N1"
// @Param search query string false "character/reading/meaning search"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/kanji [get]
func (c *ContentController) ListKanji(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	items, total, err := c.ContentService.ListKanji(page, limit, ctx.Query("jlptLevel"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: items, Total: total, Page: page, Limit: limit})
}

// GetKanji godoc
// @Summary One kanji entry
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Kanji}
// @Router /api/kanji/{id} [get]
func (c *ContentController) GetKanji(ctx *gin.Context) {
	k, err := c.ContentService.GetKanji(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, k)
}

// UpdateKanji godoc
// @Summary Update a kanji entry (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Kanji}
// @Router /api/admin/kanji/{id} [put]
func (c *ContentController) UpdateKanji(ctx *gin.Context) {
	var req service.UpdateKanjiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	k, err := c.ContentService.UpdateKanji(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if service.IsNotFound(err) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, k)
}

// DeleteKanji godoc
// @Summary Delete a kanji entry (admin)
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/kanji/{id} [delete]
func (c *ContentController) DeleteKanji(ctx *gin.Context) {
	if err := c.ContentService.DeleteKanji(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ---- kana ----

// swagger:model CreateKanaRequest
type CreateKanaRequest struct {
	Character string `json:"character" binding:"required"`
	Romaji    string `json:"romaji" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=hiragana katakana"`
	RowGroup  string `json:"rowGroup"`
	AudioURL  string `json:"audioUrl"`
}

// ListKana godoc
// @Summary Kana table, optionally one syllabary
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "hiragana or katakana"
// @Success 200 {object} util.Response
// @Router /api/kana [get]
func (c *ContentController) ListKana(ctx *gin.Context) {
	items, err := c.ContentService.ListKana(ctx.Query("type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// CreateKana godoc
// @Summary Add a kana row (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Kana}
// @Router /api/admin/kana [post]
func (c *ContentController) CreateKana(ctx *gin.Context) {
	var req CreateKanaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	k := &model.Kana{
		Character: req.Character,
		Romaji:    req.Romaji,
		Type:      model.KanaType(req.Type),
		RowGroup:  req.RowGroup,
		AudioURL:  req.AudioURL,
	}
	if err := c.ContentService.CreateKana(k); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, k)
}

// UpdateKana godoc
// @Summary Update a kana row (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Kana}
// @Router /api/admin/kana/{id} [put]
func (c *ContentController) UpdateKana(ctx *gin.Context) {
	var req service.UpdateKanaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	k, err := c.ContentService.UpdateKana(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if service.IsNotFound(err) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, k)
}

// DeleteKana godoc
// @Summary Delete a kana row (admin)
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/kana/{id} [delete]
func (c *ContentController) DeleteKana(ctx *gin.Context) {
	if err := c.ContentService.DeleteKana(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ---- vocabulary ----

// swagger:model CreateVocabularyRequest
type CreateVocabularyRequest struct {
	Word      string `json:"word" binding:"required"`
	Reading   string `json:"reading" binding:"required"`
	Meaning   string `json:"meaning" binding:"required"`
	JLPTLevel string `json:"jlptLevel" binding:"omitempty,oneof=N5 N4 N3 N2 N1"`
	Example   string `json:"example"`
	AudioURL  string `json:"audioUrl"`
}

// CreateVocabulary godoc
// @Summary Add a vocabulary entry (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Vocabulary}
// @Router /api/admin/vocabulary [post]
func (c *ContentController) CreateVocabulary(ctx *gin.Context) {
	var req CreateVocabularyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	v := &model.Vocabulary{
		Word:      req.Word,
		Reading:   req.Reading,
		Meaning:   req.Meaning,
		JLPTLevel: req.JLPTLevel,
		Example:   req.Example,
		AudioURL:  req.AudioURL,
	}
	if err := c.ContentService.CreateVocabulary(v); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, v)
}

// ListVocabulary godoc
// @Summary Browse vocabulary
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/vocabulary [get]
func (c *ContentController) ListVocabulary(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	items, total, err := c.ContentService.ListVocabulary(page, limit, ctx.Query("jlptLevel"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: items, Total: total, Page: page, Limit: limit})
}

// GetVocabulary godoc
// @Summary One vocabulary entry
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Vocabulary}
// @Router /api/vocabulary/{id} [get]
func (c *ContentController) GetVocabulary(ctx *gin.Context) {
	v, err := c.ContentService.GetVocabulary(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, v)
}

// UpdateVocabulary godoc
// @Summary Update a vocabulary entry (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Vocabulary}
// @Router /api/admin/vocabulary/{id} [put]
func (c *ContentController) UpdateVocabulary(ctx *gin.Context) {
	var req service.UpdateVocabularyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	v, err := c.ContentService.UpdateVocabulary(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if service.IsNotFound(err) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, v)
}

// DeleteVocabulary godoc
// @Summary Delete a vocabulary entry (admin)
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/vocabulary/{id} [delete]
func (c *ContentController) DeleteVocabulary(ctx *gin.Context) {
	if err := c.ContentService.DeleteVocabulary(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"nihongo_backend/internal/service"
	"nihongo_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

func allowedExtension(ext string) bool {
	for _, e := range util.AllowedImageExtensions {
		if ext == e {
			return true
		}
	}
	for _, e := range util.AllowedAudioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Upload godoc
// @Summary Upload a media file (admin)
// @Description Stores a stroke-order image or audio clip and returns its URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image or audio file"
// @Success 201 {object} util.Response
// @Router /api/admin/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtension(ext) {
		util.BadRequest(ctx, "unsupported file type")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	filename := uuid.New().String() + ext
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.Error(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	util.Created(ctx, gin.H{"url": url, "filename": filename})
}

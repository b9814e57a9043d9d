package handlers

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"nexues_backend/internal/services"
	"nexues_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewFileHandler(base *BaseHandler, uploadService services.UploadService) *FileHandler {
	return &FileHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// Serve godoc
// @Summary Отдача загруженного файла
// @Tags files
// @Produce octet-stream
// @Param filepath path string true "Путь к файлу"
// @Success 200
// @Router /files/{filepath} [get]
func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")

	// Защита от выхода за пределы каталога хранилища
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.uploadService.GetFile(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(200)
	io.Copy(c.Writer, reader)
}

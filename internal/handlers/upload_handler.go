package handlers

import (
	"nexues_backend/internal/services"
	"nexues_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// UploadResume godoc
// @Summary Загрузка резюме (.pdf/.doc/.docx, до 5 МБ)
// @Tags upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл резюме"
// @Success 200 {object} map[string]interface{}
// @Router /upload/resume [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFileUploaded)
		return
	}

	response, err := h.uploadService.UploadResume(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

// UploadLogo godoc
// @Summary Загрузка логотипа (.jpg/.jpeg/.png/.gif, до 2 МБ)
// @Tags upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл логотипа"
// @Success 200 {object} map[string]interface{}
// @Router /upload/logo [post]
func (h *UploadHandler) UploadLogo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFileUploaded)
		return
	}

	response, err := h.uploadService.UploadLogo(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, response)
}

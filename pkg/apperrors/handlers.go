package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке.
// Каждый ответ об ошибке несет минимум {success:false, message}.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// debug управляет тем, показываем ли клиенту детали 5xx ошибок.
// Устанавливается один раз при старте приложения.
var debug = false

// SetDebug включает режим подробных ошибок (только для development)
func SetDebug(enabled bool) {
	debug = enabled
}

// HandleError отправляет ошибку клиенту в стандартном формате.
// Внутренние (5xx) ошибки наружу отдаются generic-сообщением,
// подробности остаются в серверных логах.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}

	if appErr.HTTPCode >= http.StatusInternalServerError && !debug {
		resp.Message = "Internal server error"
		resp.Details = nil
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, resp)
}

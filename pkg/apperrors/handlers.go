package apperrors

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - конверт ответа об ошибке {success:false, message, ...}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Details string      `json:"details,omitempty"`
}

var debugMode atomic.Bool

// SetDebug включает вывод внутренних деталей ошибок (только вне production)
func SetDebug(debug bool) {
	debugMode.Store(debug)
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError приводит любую ошибку к AppError и пишет конверт
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, h.buildResponse(appErr))
}

func (h *GinErrorHandler) buildResponse(appErr *AppError) ErrorResponse {
	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
	}

	if appErr.Code == CodeValidationFailed && appErr.Details != nil {
		resp.Errors = appErr.Details
	}

	// Внутренности (текст исходной ошибки) отдаем только в debug
	if h.Debug && appErr.Err != nil {
		resp.Details = appErr.Err.Error()
	}

	return resp
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugMode.Load()}
	handler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

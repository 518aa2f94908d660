package handlers

import (
	"hr_portal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SuccessResponse - конверт успешного ответа
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondData(c *gin.Context, status int, data interface{}) {
	RespondSuccess(c, status, "", data)
}

// NotFound - ответ для неизвестных маршрутов
func NotFound(c *gin.Context) {
	apperrors.HandleError(c, apperrors.NewNotFoundError("route", "Route not found"))
}

package handlers

import (
	"net/http"

	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	*BaseHandler
	webhookService services.WebhookService
	secretCheck    gin.HandlerFunc
}

func NewWebhookHandler(base *BaseHandler, webhookService services.WebhookService, secretCheck gin.HandlerFunc) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler:    base,
		webhookService: webhookService,
		secretCheck:    secretCheck,
	}
}

func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	webhooks := r.Group("/webhooks")
	webhooks.Use(h.secretCheck)
	{
		webhooks.POST("/update-interview", h.UpdateInterview)
	}
}

// UpdateInterview godoc
// @Summary Обновление данных интервью из системы автоматизации
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string false "Общий секрет"
// @Param payload body dto.UpdateInterviewWebhookRequest true "Данные интервью"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /webhooks/update-interview [post]
func (h *WebhookHandler) UpdateInterview(c *gin.Context) {
	var req dto.UpdateInterviewWebhookRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.webhookService.UpdateInterview(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Interview data updated successfully", nil)
}

package handlers

import "github.com/gin-gonic/gin"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	JobHandler       *JobHandler
	CandidateHandler *CandidateHandler
	InterviewHandler *InterviewHandler
	UserHandler      *UserHandler
	WebhookHandler   *WebhookHandler
}

// RegisterRoutes подключает все группы под /api
func (h *AppHandlers) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/health", Health)

	h.JobHandler.RegisterRoutes(api)
	h.CandidateHandler.RegisterRoutes(api)
	h.InterviewHandler.RegisterRoutes(api)
	h.UserHandler.RegisterRoutes(api)
	h.WebhookHandler.RegisterRoutes(api)
}

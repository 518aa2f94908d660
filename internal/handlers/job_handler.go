package handlers

import (
	"net/http"

	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	aiLimit    gin.HandlerFunc
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, aiLimit gin.HandlerFunc) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		aiLimit:     aiLimit,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")

	// Публичная страница вакансии для кандидатов
	jobs.GET("/public/:jobId", h.GetPublicJob)

	protected := jobs.Group("")
	protected.Use(h.Auth())
	{
		protected.POST("", h.CreateJob)
		protected.GET("", h.ListJobs)

		ai := protected.Group("/ai")
		if h.aiLimit != nil {
			ai.Use(h.aiLimit)
		}
		ai.POST("/generate-description", h.GenerateDescription)
		ai.GET("/test-config", h.TestAIConfig)

		protected.GET("/:jobId", h.GetJob)
		protected.PUT("/:jobId", h.UpdateJob)
		protected.DELETE("/:jobId", h.DeleteJob)
	}
}

// CreateJob godoc
// @Summary Создать вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} SuccessResponse{data=models.Job}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, "Job post created successfully", job)
}

// ListJobs godoc
// @Summary Вакансии текущего пользователя
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=[]models.Job}
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, jobs)
}

// GetPublicJob godoc
// @Summary Публичные данные вакансии
// @Tags jobs
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} SuccessResponse{data=models.PublicJob}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/public/{jobId} [get]
func (h *JobHandler) GetPublicJob(c *gin.Context) {
	job, err := h.jobService.GetPublicJob(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, job)
}

// GetJob godoc
// @Summary Вакансия владельца
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} SuccessResponse{data=models.Job}
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, job)
}

// UpdateJob godoc
// @Summary Обновить вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Param job body dto.UpdateJobRequest true "Изменения"
// @Success 200 {object} SuccessResponse{data=models.Job}
// @Router /jobs/{jobId} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Job post updated successfully", job)
}

// DeleteJob godoc
// @Summary Удалить вакансию
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} SuccessResponse
// @Router /jobs/{jobId} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Job post deleted successfully", nil)
}

// GenerateDescription godoc
// @Summary Сгенерировать описание вакансии
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateDescriptionRequest true "Название и требования"
// @Success 200 {object} SuccessResponse{data=dto.GenerateDescriptionResponse}
// @Failure 429 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /jobs/ai/generate-description [post]
func (h *JobHandler) GenerateDescription(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.GenerateDescriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	description, err := h.jobService.GenerateDescription(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, dto.GenerateDescriptionResponse{Description: description})
}

// TestAIConfig godoc
// @Summary Состояние AI-провайдера
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.AIConfigResponse}
// @Router /jobs/ai/test-config [get]
func (h *JobHandler) TestAIConfig(c *gin.Context) {
	RespondData(c, http.StatusOK, h.jobService.AIConfig())
}

package handlers

import (
	"errors"
	"net/http"

	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartMemory - сверх этого объема части формы уходят во временные файлы
const multipartMemory = 8 << 20

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
	applyLimit       gin.HandlerFunc
}

func NewCandidateHandler(base *BaseHandler, candidateService services.CandidateService, applyLimit gin.HandlerFunc) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
		applyLimit:       applyLimit,
	}
}

func (h *CandidateHandler) RegisterRoutes(r *gin.RouterGroup) {
	candidates := r.Group("/candidates")

	apply := []gin.HandlerFunc{}
	if h.applyLimit != nil {
		apply = append(apply, h.applyLimit)
	}
	apply = append(apply, h.Apply)
	candidates.POST("/apply/:jobId", apply...)

	protected := candidates.Group("")
	protected.Use(h.Auth())
	{
		protected.GET("/dashboard/stats", h.DashboardStats)
		protected.GET("/job/:jobId", h.ListByJob)
		protected.POST("/:id/schedule-ai-interview", h.ScheduleAIInterview)
		protected.POST("/:id/schedule-manual-interview", h.ScheduleManualInterview)
		protected.GET("/:id/transcript", h.InterviewTranscript)
		protected.GET("/:id", h.GetCandidate)
	}
}

// Apply godoc
// @Summary Отклик на вакансию
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param resume formData file true "Резюме (.pdf, .doc, .docx)"
// @Param name formData string true "Имя"
// @Param email formData string true "Email"
// @Param phone formData string true "Телефон"
// @Param experience formData int true "Опыт, лет"
// @Success 201 {object} SuccessResponse{data=dto.ApplyResponse}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidates/apply/{jobId} [post]
func (h *CandidateHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return
	}

	// Сначала файл, потом остальные поля
	header, err := c.FormFile("resume")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrResumeRequired)
		return
	}
	if err := h.candidateService.ValidateResume(header.Filename, header.Size); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	file, err := ReadUploadedFile(header)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	candidate, err := h.candidateService.Apply(ctx, h.GetDB(c), c.Param("jobId"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, "Application submitted successfully", dto.ApplyResponse{CandidateID: candidate.ID})
}

// DashboardStats godoc
// @Summary Статистика по вакансиям пользователя
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.DashboardStats}
// @Router /candidates/dashboard/stats [get]
func (h *CandidateHandler) DashboardStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.candidateService.DashboardStats(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, stats)
}

// ListByJob godoc
// @Summary Кандидаты по вакансии
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} SuccessResponse{data=[]models.Candidate}
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidates/job/{jobId} [get]
func (h *CandidateHandler) ListByJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidates, err := h.candidateService.ListByJob(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, candidates)
}

// GetCandidate godoc
// @Summary Кандидат по ID
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID кандидата"
// @Success 200 {object} SuccessResponse{data=models.Candidate}
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateService.GetCandidate(c.Request.Context(), h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, candidate)
}

// ScheduleAIInterview godoc
// @Summary Назначить AI-интервью
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID кандидата"
// @Param request body dto.ScheduleAIInterviewRequest true "Дата и время"
// @Success 200 {object} SuccessResponse{data=models.Candidate}
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /candidates/{id}/schedule-ai-interview [post]
func (h *CandidateHandler) ScheduleAIInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleAIInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.ScheduleAIInterview(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "AI interview scheduled successfully", candidate)
}

// ScheduleManualInterview godoc
// @Summary Назначить интервью по ссылке Calendly
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID кандидата"
// @Param request body dto.ScheduleManualInterviewRequest true "Ссылка Calendly"
// @Success 200 {object} SuccessResponse{data=models.Candidate}
// @Router /candidates/{id}/schedule-manual-interview [post]
func (h *CandidateHandler) ScheduleManualInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleManualInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.candidateService.ScheduleManualInterview(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Manual interview scheduled successfully", candidate)
}

// InterviewTranscript godoc
// @Summary Расшифровка AI-интервью
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID кандидата"
// @Success 200 {object} SuccessResponse{data=dto.TranscriptResponse}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidates/{id}/transcript [get]
func (h *CandidateHandler) InterviewTranscript(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	transcript, err := h.candidateService.InterviewTranscript(c.Request.Context(), h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, transcript)
}

package handlers

import (
	"net/http"

	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	interviews := r.Group("/interviews")
	interviews.Use(h.Auth())
	{
		interviews.POST("", h.ScheduleInterview)
		interviews.GET("", h.ListInterviews)
		interviews.GET("/:id", h.GetInterview)
		interviews.PUT("/:id", h.UpdateInterview)
		interviews.DELETE("/:id", h.DeleteInterview)
		interviews.POST("/:id/report", h.SubmitReport)
	}
}

// ScheduleInterview godoc
// @Summary Назначить интервью кандидату
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body dto.CreateInterviewRequest true "Интервью"
// @Success 201 {object} SuccessResponse{data=models.Interview}
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /interviews [post]
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.ScheduleInterview(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, "Interview scheduled successfully", interview)
}

// ListInterviews godoc
// @Summary Интервью по вакансиям пользователя
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=[]models.Interview}
// @Router /interviews [get]
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.ListInterviews(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, interviews)
}

// GetInterview godoc
// @Summary Интервью по ID
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID интервью"
// @Success 200 {object} SuccessResponse{data=models.Interview}
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /interviews/{id} [get]
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interview, err := h.interviewService.GetInterview(c.Request.Context(), h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, interview)
}

// UpdateInterview godoc
// @Summary Изменить интервью
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID интервью"
// @Param interview body dto.UpdateInterviewRequest true "Изменения"
// @Success 200 {object} SuccessResponse{data=models.Interview}
// @Router /interviews/{id} [put]
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateInterview(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Interview updated successfully", interview)
}

// DeleteInterview godoc
// @Summary Удалить интервью
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID интервью"
// @Success 200 {object} SuccessResponse
// @Router /interviews/{id} [delete]
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.DeleteInterview(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Interview deleted successfully", nil)
}

// SubmitReport godoc
// @Summary Отчет по интервью
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID интервью"
// @Param report body dto.SubmitReportRequest true "Оценка"
// @Success 200 {object} SuccessResponse{data=models.EvaluationReport}
// @Router /interviews/{id}/report [post]
func (h *InterviewHandler) SubmitReport(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	report, err := h.interviewService.SubmitReport(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Interview report submitted successfully", report)
}

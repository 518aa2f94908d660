package handlers

import (
	"errors"
	"net/http"

	"hr_portal_backend/internal/middleware"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(h.Auth())
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.POST("/profile/photo", h.UploadPhoto)
		users.PUT("/password", h.ChangePassword)
		users.DELETE("/account", h.DeleteAccount)
	}
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), h.GetDB(c), userID, middleware.GetUserEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondData(c, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Обновить профиль
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UpdateProfileRequest true "Изменения профиля"
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), h.GetDB(c), userID, middleware.GetUserEmail(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Profile updated successfully", profile)
}

// UploadPhoto godoc
// @Summary Загрузить фото профиля
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Изображение"
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/profile/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Photo file is required"))
		return
	}

	file, err := ReadUploadedFile(header)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	profile, err := h.userService.UploadPhoto(c.Request.Context(), h.GetDB(c), userID, middleware.GetUserEmail(c), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Profile photo updated successfully", profile)
}

// ChangePassword godoc
// @Summary Сменить пароль
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Новый пароль"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// DeleteAccount godoc
// @Summary Запросить удаление аккаунта
// @Description Ставит отметку; данные удаляются фоновым обработчиком
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 202 {object} SuccessResponse{data=dto.DeletionResponse}
// @Router /users/account [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.RequestDeletion(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	RespondSuccess(c, http.StatusAccepted, "Account deletion scheduled", resp)
}

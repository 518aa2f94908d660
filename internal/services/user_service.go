package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/imageprocessor"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/internal/storage"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(ctx context.Context, db *gorm.DB, uid, email string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, uid, email string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UploadPhoto(ctx context.Context, db *gorm.DB, uid, email string, file *dto.UploadedFile) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, uid string, req *dto.ChangePasswordRequest) error
	RequestDeletion(ctx context.Context, db *gorm.DB, uid string) (*dto.DeletionResponse, error)
}

type userService struct {
	profileRepo repositories.ProfileRepository
	accounts    identity.AccountManager
	storage     storage.Storage
	images      *imageprocessor.Processor
	maxPhoto    int64
	now         func() time.Time
}

func NewUserService(
	profileRepo repositories.ProfileRepository,
	accounts identity.AccountManager,
	storage storage.Storage,
	images *imageprocessor.Processor,
	maxPhotoSize int64,
) UserService {
	if maxPhotoSize <= 0 {
		maxPhotoSize = 5 * 1024 * 1024
	}
	return &userService{
		profileRepo: profileRepo,
		accounts:    accounts,
		storage:     storage,
		images:      images,
		maxPhoto:    maxPhotoSize,
		now:         time.Now,
	}
}

func (s *userService) GetProfile(ctx context.Context, db *gorm.DB, uid, email string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUID(db, uid)
	if err == nil {
		return toProfileResponse(profile, email), nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Своей записи нет: отдаем данные провайдера идентификации
	user, err := s.accounts.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found").WithError(err)
		}
		return nil, apperrors.UpstreamError(err, "identity", "Failed to fetch user profile")
	}

	resp := &dto.ProfileResponse{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}
	if !user.CreatedAt.IsZero() {
		created := user.CreatedAt
		resp.CreatedAt = &created
	}
	return resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, db *gorm.DB, uid, email string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.UserProfile{UID: uid}
	var columns []string
	set := func(column, value string, dst *string) {
		if value != "" {
			*dst = value
			columns = append(columns, column)
		}
	}
	set("display_name", req.DisplayName, &profile.DisplayName)
	set("photo_url", req.PhotoURL, &profile.PhotoURL)
	set("phone", req.Phone, &profile.Phone)
	set("company", req.Company, &profile.Company)
	set("title", req.Title, &profile.Title)
	set("bio", req.Bio, &profile.Bio)

	if err := s.pushToIdentity(ctx, uid, req.DisplayName, req.PhotoURL); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Upsert(db, profile, columns); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User profile updated", "fields", columns)

	stored, err := s.profileRepo.FindByUID(db, uid)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toProfileResponse(stored, email), nil
}

func (s *userService) UploadPhoto(ctx context.Context, db *gorm.DB, uid, email string, file *dto.UploadedFile) (*dto.ProfileResponse, error) {
	if file == nil || len(file.Content) == 0 {
		return nil, apperrors.ErrInvalidImage
	}
	if file.Size > s.maxPhoto {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": s.maxPhoto})
	}

	processed, err := s.images.ProcessAvatar(bytes.NewReader(file.Content))
	if err != nil {
		return nil, apperrors.ErrInvalidImage.WithError(err)
	}

	key := fmt.Sprintf("avatars/%s/%d.jpg", uid, s.now().UnixMilli())
	if err := s.storage.Save(ctx, key, bytes.NewReader(processed.Data), "image/jpeg"); err != nil {
		return nil, apperrors.UpstreamError(err, "storage", "Failed to store profile photo")
	}

	return s.UpdateProfile(ctx, db, uid, email, &dto.UpdateProfileRequest{PhotoURL: s.storage.URL(key)})
}

func (s *userService) ChangePassword(ctx context.Context, uid string, req *dto.ChangePasswordRequest) error {
	user, err := s.accounts.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found").WithError(err)
		}
		return apperrors.UpstreamError(err, "identity", "Failed to load user account")
	}
	if user.Email == "" {
		return apperrors.ErrUserEmailNotFound
	}

	password := req.NewPassword
	if err := s.accounts.UpdateUser(ctx, uid, identity.UserUpdate{Password: &password}); err != nil {
		return apperrors.UpstreamError(err, "identity", "Failed to change password")
	}

	logger.CtxInfo(ctx, "Password changed")
	return nil
}

// RequestDeletion ставит отметку; сами данные удаляет DeletionService
func (s *userService) RequestDeletion(ctx context.Context, db *gorm.DB, uid string) (*dto.DeletionResponse, error) {
	profile, err := s.profileRepo.MarkForDeletion(db, uid, s.now().UTC())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	disabled := true
	if err := s.accounts.UpdateUser(ctx, uid, identity.UserUpdate{Disabled: &disabled}); err != nil {
		logger.CtxWarn(ctx, "Failed to disable identity account, sweep will delete it", "error", err)
	}

	logger.CtxInfo(ctx, "Account deletion scheduled", "requested_at", profile.DeletionRequestedAt)
	return &dto.DeletionResponse{
		UID:                 uid,
		DeletionRequestedAt: *profile.DeletionRequestedAt,
	}, nil
}

func (s *userService) pushToIdentity(ctx context.Context, uid, displayName, photoURL string) error {
	if displayName == "" && photoURL == "" {
		return nil
	}
	var update identity.UserUpdate
	if displayName != "" {
		update.DisplayName = &displayName
	}
	if photoURL != "" {
		update.PhotoURL = &photoURL
	}
	if err := s.accounts.UpdateUser(ctx, uid, update); err != nil {
		return apperrors.UpstreamError(err, "identity", "Failed to update user account")
	}
	return nil
}

func toProfileResponse(p *models.UserProfile, email string) *dto.ProfileResponse {
	created, updated := p.CreatedAt, p.UpdatedAt
	return &dto.ProfileResponse{
		UID:         p.UID,
		Email:       email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		Phone:       p.Phone,
		Company:     p.Company,
		Title:       p.Title,
		Bio:         p.Bio,
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
}

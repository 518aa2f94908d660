package dto

import "time"

// ProfileResponse - профиль, слитый с данными провайдера идентификации
type ProfileResponse struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email,omitempty"`
	DisplayName string     `json:"displayName"`
	PhotoURL    string     `json:"photoURL"`
	Phone       string     `json:"phone,omitempty"`
	Company     string     `json:"company,omitempty"`
	Title       string     `json:"title,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// UpdateProfileRequest - пустые значения игнорируются
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" validate:"max=255"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,url"`
	Phone       string `json:"phone" validate:"max=64"`
	Company     string `json:"company" validate:"max=255"`
	Title       string `json:"title" validate:"max=255"`
	Bio         string `json:"bio" validate:"max=5000"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type DeletionResponse struct {
	UID                 string    `json:"uid"`
	DeletionRequestedAt time.Time `json:"deletionRequestedAt"`
}

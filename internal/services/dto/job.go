package dto

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
}

// UpdateJobRequest - nil поля не меняются
type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=255"`
	Description *string `json:"description" validate:"omitempty,notblank"`
}

type GenerateDescriptionRequest struct {
	Title        string `json:"title" validate:"required,notblank"`
	Requirements string `json:"requirements" validate:"required,notblank"`
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// AIConfigResponse - состояние генератора без раскрытия ключа
type AIConfigResponse struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
	Message    string `json:"message"`
}

package apperrors

import "net/http"

// ErrNotFound - фабрика для "не найдено" поверх ошибки репозитория
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// --- Доступ ---

var ErrAccessDenied = New(CodeForbidden, "auth", "Access denied", http.StatusForbidden)

var ErrNoToken = New(CodeUnauthorized, "auth", "Unauthorized: No token provided", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Unauthorized: Invalid token", http.StatusUnauthorized)

var ErrInvalidWebhookSecret = New(CodeInvalidSecret, "webhook", "Forbidden: Invalid webhook secret", http.StatusForbidden)

var ErrTooManyRequests = New(CodeLimitExceeded, "rate_limit", "Too many requests, please try again later", http.StatusTooManyRequests)

// --- Сущности ---

var ErrJobNotFound = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)

var ErrCandidateNotFound = New(CodeNotFound, "candidate", "Candidate not found", http.StatusNotFound)

var ErrInterviewNotFound = New(CodeNotFound, "interview", "Interview not found", http.StatusNotFound)

var ErrTranscriptUnavailable = New(CodeNotFound, "candidate", "No AI interview meeting for this candidate", http.StatusNotFound)

// --- Загрузка файлов ---

var ErrResumeRequired = New(CodeValidationFailed, "upload", "Resume file is required", http.StatusBadRequest)

var ErrFileTooLarge = New(CodeLimitExceeded, "upload", "File size exceeds the allowed limit", http.StatusBadRequest)

var ErrInvalidResumeType = New(CodeValidationFailed, "upload", "Invalid file type. Only PDF and DOC files are allowed.", http.StatusBadRequest)

var ErrInvalidImage = New(CodeValidationFailed, "upload", "Invalid image file", http.StatusBadRequest)

// --- Пользователь ---

var ErrUserEmailNotFound = New(CodeInvalidOperation, "user", "User email not found", http.StatusBadRequest)

// --- AI ---

var ErrAINotConfigured = New(CodeExternalServiceError, "ai", "AI service is not configured. Please contact the administrator.", http.StatusInternalServerError)

var ErrAIRateLimited = New(CodeExternalServiceError, "ai", "API rate limit reached. Please try again in a few minutes.", http.StatusInternalServerError)

var ErrAIGenerationFailed = New(CodeExternalServiceError, "ai", "Failed to generate job description. Please try again.", http.StatusInternalServerError)

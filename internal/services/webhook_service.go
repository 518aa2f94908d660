package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookService interface {
	UpdateInterview(ctx context.Context, db *gorm.DB, req *dto.UpdateInterviewWebhookRequest) error
}

type webhookService struct {
	candidateRepo repositories.CandidateRepository
}

func NewWebhookService(candidateRepo repositories.CandidateRepository) WebhookService {
	return &webhookService{candidateRepo: candidateRepo}
}

func (s *webhookService) UpdateInterview(ctx context.Context, db *gorm.DB, req *dto.UpdateInterviewWebhookRequest) error {
	candidateID := strings.TrimSpace(req.CandidateID)
	if candidateID == "" {
		return apperrors.NewBadRequestError("Candidate ID is required")
	}

	if _, err := s.candidateRepo.FindByID(db, candidateID); err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return apperrors.ErrCandidateNotFound.WithError(err)
		}
		return apperrors.InternalError(err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.InterviewLink != "" {
		updates["interview_link"] = req.InterviewLink
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if hasJSONValue(req.InterviewReport) {
		if !json.Valid(req.InterviewReport) {
			return apperrors.NewBadRequestError("interviewReport must be valid JSON")
		}
		updates["interview_report"] = datatypes.JSON(req.InterviewReport)
	}

	if err := s.candidateRepo.UpdateFields(db, candidateID, updates); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview data updated from webhook", "candidate_id", candidateID, "status", req.Status)
	return nil
}

// hasJSONValue - ложные значения ("", null, false, 0) не перезаписывают отчет.
// Пустые объект и массив считаются значением.
func hasJSONValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", `""`, "false", "0":
		return false
	}
	return true
}

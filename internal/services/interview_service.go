package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InterviewService interface {
	ScheduleInterview(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateInterviewRequest) (*models.Interview, error)
	ListInterviews(ctx context.Context, db *gorm.DB, userID string) ([]models.Interview, error)
	GetInterview(ctx context.Context, db *gorm.DB, userID, interviewID string) (*models.Interview, error)
	UpdateInterview(ctx context.Context, db *gorm.DB, userID, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	DeleteInterview(ctx context.Context, db *gorm.DB, userID, interviewID string) error
	SubmitReport(ctx context.Context, db *gorm.DB, userID, interviewID string, req *dto.SubmitReportRequest) (*models.EvaluationReport, error)
}

type interviewService struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	interviewRepo repositories.InterviewRepository
	now           func() time.Time
}

func NewInterviewService(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	interviewRepo repositories.InterviewRepository,
) InterviewService {
	return &interviewService{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		now:           time.Now,
	}
}

func (s *interviewService) ScheduleInterview(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	candidate, job, err := loadOwnedCandidate(db, s.jobRepo, s.candidateRepo, req.CandidateID, userID)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration <= 0 {
		duration = models.DefaultInterviewDuration
	}

	interview := &models.Interview{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		CreatedBy:     userID,
		ScheduledTime: req.ScheduledTime.UTC(),
		Duration:      duration,
		Notes:         req.Notes,
		Status:        models.InterviewStatusScheduled,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.interviewRepo.Create(tx, interview); err != nil {
			return err
		}
		return s.candidateRepo.UpdateFields(tx, candidate.ID, map[string]interface{}{
			"status":         models.CandidateStatusInterviewScheduled,
			"interview_link": "/interview/" + interview.ID,
			"meeting_id":     nil,
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview scheduled", "interview_id", interview.ID, "candidate_id", candidate.ID)
	return interview, nil
}

func (s *interviewService) ListInterviews(ctx context.Context, db *gorm.DB, userID string) ([]models.Interview, error) {
	jobIDs, err := s.jobRepo.ListIDsByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	interviews, err := s.interviewRepo.ListByJobIDs(db, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviews, nil
}

func (s *interviewService) GetInterview(ctx context.Context, db *gorm.DB, userID, interviewID string) (*models.Interview, error) {
	return loadOwnedInterview(db, s.jobRepo, s.interviewRepo, interviewID, userID)
}

func (s *interviewService) UpdateInterview(ctx context.Context, db *gorm.DB, userID, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	if _, err := loadOwnedInterview(db, s.jobRepo, s.interviewRepo, interviewID, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ScheduledTime != nil {
		updates["scheduled_time"] = req.ScheduledTime.UTC()
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = strings.TrimSpace(*req.Status)
	}

	if len(updates) > 0 {
		if err := s.interviewRepo.Update(db, interviewID, updates); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "Interview updated", "interview_id", interviewID)
	}

	updated, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *interviewService) DeleteInterview(ctx context.Context, db *gorm.DB, userID, interviewID string) error {
	interview, err := loadOwnedInterview(db, s.jobRepo, s.interviewRepo, interviewID, userID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.interviewRepo.Delete(tx, interviewID); err != nil {
			return err
		}
		return s.candidateRepo.UpdateFields(tx, interview.CandidateID, map[string]interface{}{
			"status":         models.CandidateStatusApplied,
			"interview_link": nil,
			"meeting_id":     nil,
		})
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return apperrors.ErrInterviewNotFound.WithError(err)
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview deleted", "interview_id", interviewID)
	return nil
}

func (s *interviewService) SubmitReport(ctx context.Context, db *gorm.DB, userID, interviewID string, req *dto.SubmitReportRequest) (*models.EvaluationReport, error) {
	interview, err := loadOwnedInterview(db, s.jobRepo, s.interviewRepo, interviewID, userID)
	if err != nil {
		return nil, err
	}

	report := &models.EvaluationReport{
		Score:          *req.Score,
		Summary:        strings.TrimSpace(req.Summary),
		Recommendation: strings.TrimSpace(req.Recommendation),
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		SubmittedAt:    s.now().UTC(),
	}
	// Один и тот же JSON пишется в интервью и в кандидата
	raw, err := report.ToJSON()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.interviewRepo.Update(tx, interview.ID, map[string]interface{}{
			"report": raw,
			"status": models.InterviewStatusCompleted,
		}); err != nil {
			return err
		}
		return s.candidateRepo.UpdateFields(tx, interview.CandidateID, map[string]interface{}{
			"status":            models.CandidateStatusInterviewCompleted,
			"evaluation_report": raw,
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Interview report submitted", "interview_id", interview.ID, "score", report.Score)
	return report, nil
}

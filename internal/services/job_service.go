package services

import (
	"context"
	"errors"
	"strings"

	"hr_portal_backend/internal/integrations/aitext"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, db *gorm.DB, userID string) ([]models.Job, error)
	GetPublicJob(ctx context.Context, db *gorm.DB, jobID string) (*models.PublicJob, error)
	GetJob(ctx context.Context, db *gorm.DB, userID, jobID string) (*models.Job, error)
	UpdateJob(ctx context.Context, db *gorm.DB, userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, db *gorm.DB, userID, jobID string) error

	GenerateDescription(ctx context.Context, req *dto.GenerateDescriptionRequest) (string, error)
	AIConfig() *dto.AIConfigResponse
}

type jobService struct {
	jobRepo   repositories.JobRepository
	generator aitext.Generator
}

func NewJobService(jobRepo repositories.JobRepository, generator aitext.Generator) JobService {
	return &jobService{
		jobRepo:   jobRepo,
		generator: generator,
	}
}

func (s *jobService) CreateJob(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		CreatedBy:   userID,
		Status:      models.JobStatusActive,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job post created", "job_id", job.ID)
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, db *gorm.DB, userID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) GetPublicJob(ctx context.Context, db *gorm.DB, jobID string) (*models.PublicJob, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound.WithError(err)
		}
		return nil, apperrors.InternalError(err)
	}
	public := job.Public()
	return &public, nil
}

func (s *jobService) GetJob(ctx context.Context, db *gorm.DB, userID, jobID string) (*models.Job, error) {
	return ensureJobOwner(db, s.jobRepo, jobID, userID)
}

func (s *jobService) UpdateJob(ctx context.Context, db *gorm.DB, userID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := ensureJobOwner(db, s.jobRepo, jobID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
		updates["title"] = job.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
		updates["description"] = job.Description
	}
	if len(updates) == 0 {
		return job, nil
	}

	if err := s.jobRepo.Update(db, jobID, updates); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job post updated", "job_id", jobID)

	updated, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *jobService) DeleteJob(ctx context.Context, db *gorm.DB, userID, jobID string) error {
	if _, err := ensureJobOwner(db, s.jobRepo, jobID, userID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound.WithError(err)
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job post deleted", "job_id", jobID)
	return nil
}

func (s *jobService) GenerateDescription(ctx context.Context, req *dto.GenerateDescriptionRequest) (string, error) {
	description, err := s.generator.GenerateJobDescription(ctx, req.Title, req.Requirements)
	if err != nil {
		logger.CtxWithError(ctx, "Job description generation failed", err, "model", s.generator.Model())
		switch {
		case errors.Is(err, aitext.ErrNotConfigured):
			return "", apperrors.ErrAINotConfigured.WithError(err)
		case errors.Is(err, aitext.ErrRateLimited):
			return "", apperrors.ErrAIRateLimited.WithError(err)
		default:
			return "", apperrors.ErrAIGenerationFailed.WithError(err)
		}
	}

	logger.CtxInfo(ctx, "Job description generated", "length", len(description))
	return description, nil
}

func (s *jobService) AIConfig() *dto.AIConfigResponse {
	resp := &dto.AIConfigResponse{
		Configured: s.generator.Configured(),
		Model:      s.generator.Model(),
	}
	if resp.Configured {
		resp.Message = "AI generator is configured"
	} else {
		resp.Message = "AI generator is NOT configured: set GEMINI_API_KEY"
	}
	return resp
}

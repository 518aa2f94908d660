package services

import (
	"context"
	"errors"
	"fmt"

	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/storage"

	"gorm.io/gorm"
)

// SweepResult - итог одного прохода по отмеченным пользователям
type SweepResult struct {
	Processed int
	Purged    int
	Failed    int
}

// DeletionService удаляет данные пользователей, запросивших удаление аккаунта.
// Любая ошибка оставляет отметку на месте, следующий проход продолжит.
type DeletionService interface {
	PurgeUser(ctx context.Context, db *gorm.DB, uid string) error
	SweepDeletions(ctx context.Context, db *gorm.DB, batchSize int) (*SweepResult, error)
}

type deletionService struct {
	profileRepo   repositories.ProfileRepository
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	interviewRepo repositories.InterviewRepository
	accounts      identity.AccountManager
	storage       storage.Storage
}

func NewDeletionService(
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	interviewRepo repositories.InterviewRepository,
	accounts identity.AccountManager,
	storage storage.Storage,
) DeletionService {
	return &deletionService{
		profileRepo:   profileRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		accounts:      accounts,
		storage:       storage,
	}
}

func (s *deletionService) SweepDeletions(ctx context.Context, db *gorm.DB, batchSize int) (*SweepResult, error) {
	profiles, err := s.profileRepo.ListPendingDeletion(db, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending deletions: %w", err)
	}

	result := &SweepResult{}
	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++
		if err := s.PurgeUser(ctx, db, profile.UID); err != nil {
			result.Failed++
			logger.WorkerLog("deletion", "purge_user", err, "uid", profile.UID)
			continue
		}
		result.Purged++
	}
	return result, nil
}

func (s *deletionService) PurgeUser(ctx context.Context, db *gorm.DB, uid string) error {
	jobIDs, err := s.jobRepo.ListIDsByOwner(db, uid)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	// Кандидаты удаляются по владельцу вакансии, а не по их создателю
	candidates, err := s.candidateRepo.ListByJobIDs(db, jobIDs)
	if err != nil {
		return fmt.Errorf("failed to list candidates: %w", err)
	}
	if err := s.deleteResumes(ctx, candidates); err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.interviewRepo.DeleteByJobIDs(tx, jobIDs); err != nil {
			return fmt.Errorf("failed to delete interviews: %w", err)
		}
		if _, err := s.candidateRepo.DeleteByJobIDs(tx, jobIDs); err != nil {
			return fmt.Errorf("failed to delete candidates: %w", err)
		}
		if _, err := s.jobRepo.DeleteByIDs(tx, jobIDs); err != nil {
			return fmt.Errorf("failed to delete jobs: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.accounts.DeleteUser(ctx, uid); err != nil && !errors.Is(err, identity.ErrUserNotFound) {
		return fmt.Errorf("failed to delete identity account: %w", err)
	}

	if err := s.profileRepo.Delete(db, uid); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	logger.CtxInfo(ctx, "User data purged", "uid", uid, "jobs", len(jobIDs), "candidates", len(candidates))
	return nil
}

func (s *deletionService) deleteResumes(ctx context.Context, candidates []models.Candidate) error {
	for _, c := range candidates {
		if c.ResumePath == "" {
			continue
		}
		if err := s.storage.Delete(ctx, c.ResumePath); err != nil {
			return fmt.Errorf("failed to delete resume %s: %w", c.ResumePath, err)
		}
	}
	return nil
}

package services

import (
	"errors"

	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Сначала проверяется существование (404), затем владение (403).

// ensureJobOwner загружает вакансию и проверяет, что ее создал userID
func ensureJobOwner(db *gorm.DB, jobs repositories.JobRepository, jobID, userID string) (*models.Job, error) {
	job, err := jobs.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound.WithError(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsOwnedBy(userID) {
		return nil, apperrors.ErrAccessDenied
	}
	return job, nil
}

// ensureParentJobOwner - владение дочерней сущностью через ее вакансию.
// Отсутствующая вакансия трактуется как отказ в доступе.
func ensureParentJobOwner(db *gorm.DB, jobs repositories.JobRepository, jobID, userID string) (*models.Job, error) {
	job, err := jobs.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsOwnedBy(userID) {
		return nil, apperrors.ErrAccessDenied
	}
	return job, nil
}

func loadOwnedCandidate(db *gorm.DB, jobs repositories.JobRepository, candidates repositories.CandidateRepository, candidateID, userID string) (*models.Candidate, *models.Job, error) {
	candidate, err := candidates.FindByID(db, candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, nil, apperrors.ErrCandidateNotFound.WithError(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}
	job, err := ensureParentJobOwner(db, jobs, candidate.JobID, userID)
	if err != nil {
		return nil, nil, err
	}
	return candidate, job, nil
}

func loadOwnedInterview(db *gorm.DB, jobs repositories.JobRepository, interviews repositories.InterviewRepository, interviewID, userID string) (*models.Interview, error) {
	interview, err := interviews.FindByID(db, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound.WithError(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := ensureParentJobOwner(db, jobs, interview.JobID, userID); err != nil {
		return nil, err
	}
	return interview, nil
}

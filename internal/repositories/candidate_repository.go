package repositories

import (
	"errors"

	"hr_portal_backend/internal/models"

	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(db *gorm.DB, candidate *models.Candidate) error
	FindByID(db *gorm.DB, id string) (*models.Candidate, error)
	ListByJob(db *gorm.DB, jobID string) ([]models.Candidate, error)
	ListByJobIDs(db *gorm.DB, jobIDs []string) ([]models.Candidate, error)
	CountByJobIDs(db *gorm.DB, jobIDs []string, statuses ...models.CandidateStatus) (int64, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	DeleteByJobIDs(db *gorm.DB, jobIDs []string) (int64, error)
}

type CandidateRepositoryImpl struct{}

func NewCandidateRepository() CandidateRepository {
	return &CandidateRepositoryImpl{}
}

func (r *CandidateRepositoryImpl) Create(db *gorm.DB, candidate *models.Candidate) error {
	return db.Create(candidate).Error
}

func (r *CandidateRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := db.First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := db.Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepositoryImpl) ListByJobIDs(db *gorm.DB, jobIDs []string) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	if len(jobIDs) == 0 {
		return candidates, nil
	}
	err := db.Where("job_id IN ?", jobIDs).Find(&candidates).Error
	return candidates, err
}

// CountByJobIDs считает кандидатов по вакансиям; statuses сужает выборку, если переданы
func (r *CandidateRepositoryImpl) CountByJobIDs(db *gorm.DB, jobIDs []string, statuses ...models.CandidateStatus) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var count int64
	query := db.Model(&models.Candidate{}).Where("job_id IN ?", jobIDs)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *CandidateRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	return db.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CandidateRepositoryImpl) DeleteByJobIDs(db *gorm.DB, jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	result := db.Where("job_id IN ?", jobIDs).Delete(&models.Candidate{})
	return result.RowsAffected, result.Error
}

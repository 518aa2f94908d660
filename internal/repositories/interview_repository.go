package repositories

import (
	"errors"

	"hr_portal_backend/internal/models"

	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.Interview) error
	FindByID(db *gorm.DB, id string) (*models.Interview, error)
	ListByJobIDs(db *gorm.DB, jobIDs []string) ([]models.Interview, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	DeleteByJobIDs(db *gorm.DB, jobIDs []string) (int64, error)
}

type InterviewRepositoryImpl struct{}

func NewInterviewRepository() InterviewRepository {
	return &InterviewRepositoryImpl{}
}

func (r *InterviewRepositoryImpl) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Interview, error) {
	var interview models.Interview
	err := db.First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) ListByJobIDs(db *gorm.DB, jobIDs []string) ([]models.Interview, error) {
	interviews := []models.Interview{}
	if len(jobIDs) == 0 {
		return interviews, nil
	}
	err := db.Where("job_id IN ?", jobIDs).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	return db.Model(&models.Interview{}).Where("id = ?", id).Updates(updates).Error
}

func (r *InterviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Interview{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) DeleteByJobIDs(db *gorm.DB, jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	result := db.Where("job_id IN ?", jobIDs).Delete(&models.Interview{})
	return result.RowsAffected, result.Error
}

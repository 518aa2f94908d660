package repositories

import (
	"errors"

	"hr_portal_backend/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	ListByOwner(db *gorm.DB, userID string) ([]models.Job, error)
	ListIDsByOwner(db *gorm.DB, userID string) ([]string, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	DeleteByIDs(db *gorm.DB, ids []string) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListByOwner(db *gorm.DB, userID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := db.Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListIDsByOwner(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Job{}).
		Where("created_by = ?", userID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	return db.Model(&models.Job{}).Where("id = ?", id).Updates(updates).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteByIDs(db *gorm.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.Job{})
	return result.RowsAffected, result.Error
}

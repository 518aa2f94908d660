package repositories

import (
	"errors"
	"time"

	"hr_portal_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByUID(db *gorm.DB, uid string) (*models.UserProfile, error)
	// Upsert сливает переданные колонки с существующей записью (или создает ее)
	Upsert(db *gorm.DB, profile *models.UserProfile, columns []string) error
	MarkForDeletion(db *gorm.DB, uid string, at time.Time) (*models.UserProfile, error)
	ListPendingDeletion(db *gorm.DB, limit int) ([]models.UserProfile, error)
	Delete(db *gorm.DB, uid string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUID(db *gorm.DB, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.First(&profile, "uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Upsert(db *gorm.DB, profile *models.UserProfile, columns []string) error {
	profile.UpdatedAt = time.Now().UTC()
	updateColumns := append(append([]string{}, columns...), "updated_at")

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(profile).Error
}

// MarkForDeletion идемпотентна: повторный вызов сохраняет первую отметку
func (r *ProfileRepositoryImpl) MarkForDeletion(db *gorm.DB, uid string, at time.Time) (*models.UserProfile, error) {
	var result *models.UserProfile

	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := r.FindByUID(tx, uid)
		if err != nil && !errors.Is(err, ErrProfileNotFound) {
			return err
		}

		if existing != nil {
			if existing.DeletionRequestedAt == nil {
				existing.DeletionRequestedAt = &at
				if err := tx.Model(existing).Update("deletion_requested_at", at).Error; err != nil {
					return err
				}
			}
			result = existing
			return nil
		}

		created := &models.UserProfile{UID: uid, DeletionRequestedAt: &at}
		if err := tx.Create(created).Error; err != nil {
			return err
		}
		result = created
		return nil
	})

	return result, err
}

func (r *ProfileRepositoryImpl) ListPendingDeletion(db *gorm.DB, limit int) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	query := db.Where("deletion_requested_at IS NOT NULL").Order("deletion_requested_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Delete(db *gorm.DB, uid string) error {
	return db.Delete(&models.UserProfile{}, "uid = ?", uid).Error
}

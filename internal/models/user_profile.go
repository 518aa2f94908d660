package models

import "time"

// UserProfile дополняет учетную запись у провайдера идентификации.
// Первичный ключ - uid провайдера.
type UserProfile struct {
	UID         string `gorm:"type:varchar(128);primaryKey" json:"uid"`
	DisplayName string `gorm:"type:varchar(255)" json:"displayName,omitempty"`
	PhotoURL    string `gorm:"type:text" json:"photoURL,omitempty"`
	Phone       string `gorm:"type:varchar(64)" json:"phone,omitempty"`
	Company     string `gorm:"type:varchar(255)" json:"company,omitempty"`
	Title       string `gorm:"type:varchar(255)" json:"title,omitempty"`
	Bio         string `gorm:"type:text" json:"bio,omitempty"`

	// Отметка о запросе удаления; запись удаляет DeletionWorker
	DeletionRequestedAt *time.Time `gorm:"index" json:"deletionRequestedAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

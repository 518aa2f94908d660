package models

type Job struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedBy   string    `gorm:"type:varchar(128);not null;index" json:"createdBy"`
	Status      JobStatus `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
}

// PublicJob - то, что видит соискатель без авторизации
type PublicJob struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (j *Job) Public() PublicJob {
	return PublicJob{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
	}
}

func (j *Job) IsOwnedBy(userID string) bool {
	return userID != "" && j.CreatedBy == userID
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type Interview struct {
	BaseModel
	CandidateID   string          `gorm:"type:varchar(36);not null;index" json:"candidateId"`
	JobID         string          `gorm:"type:varchar(36);not null;index" json:"jobId"`
	CreatedBy     string          `gorm:"type:varchar(128);not null;index" json:"createdBy"`
	ScheduledTime time.Time       `gorm:"not null" json:"scheduledTime"`
	Duration      int             `gorm:"not null" json:"duration"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Status        InterviewStatus `gorm:"type:varchar(32);not null" json:"status"`
	Report        datatypes.JSON  `json:"report"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Candidate struct {
	ID         string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	JobID      string          `gorm:"type:varchar(36);not null;index" json:"jobId"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Email      string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string          `gorm:"type:varchar(64);not null" json:"phone"`
	Experience int             `gorm:"not null" json:"experience"`
	ResumeURL  string          `gorm:"type:text" json:"resumeUrl"`
	ResumePath string          `gorm:"type:text" json:"-"`
	Status     CandidateStatus `gorm:"type:varchar(64);not null;index" json:"status"`

	InterviewLink *string        `gorm:"type:text" json:"interviewLink"`
	InterviewDate *string        `gorm:"type:varchar(32)" json:"interviewDate,omitempty"`
	InterviewTime *string        `gorm:"type:varchar(32)" json:"interviewTime,omitempty"`
	InterviewType *InterviewType `gorm:"type:varchar(16)" json:"interviewType,omitempty"`
	MeetingID     *string        `gorm:"type:varchar(128)" json:"-"`

	EvaluationReport datatypes.JSON `json:"evaluationReport"`
	InterviewReport  datatypes.JSON `json:"interviewReport"`

	AppliedAt time.Time `gorm:"autoCreateTime;index" json:"appliedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

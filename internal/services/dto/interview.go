package dto

import "time"

type CreateInterviewRequest struct {
	CandidateID   string     `json:"candidateId" validate:"required,notblank"`
	ScheduledTime *time.Time `json:"scheduledTime" validate:"required"`
	Duration      int        `json:"duration" validate:"omitempty,gte=1"`
	Notes         string     `json:"notes"`
}

type UpdateInterviewRequest struct {
	ScheduledTime *time.Time `json:"scheduledTime"`
	Duration      *int       `json:"duration" validate:"omitempty,gte=1"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status" validate:"omitempty,notblank,max=32"`
}

type SubmitReportRequest struct {
	Score          *int     `json:"score" validate:"required,gte=0,lte=10"`
	Summary        string   `json:"summary" validate:"required,notblank"`
	Recommendation string   `json:"recommendation" validate:"required,notblank"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
}

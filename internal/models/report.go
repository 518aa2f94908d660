package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// EvaluationReport встраивается и в Interview.report, и в Candidate.evaluationReport
type EvaluationReport struct {
	Score          int       `json:"score"`
	Summary        string    `json:"summary"`
	Recommendation string    `json:"recommendation"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// ToJSON сериализует отчет для JSON-колонки
func (r *EvaluationReport) ToJSON() (datatypes.JSON, error) {
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evaluation report: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// ParseReport разбирает JSON-колонку; пустая колонка -> nil
func ParseReport(raw datatypes.JSON) (*EvaluationReport, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var r EvaluationReport
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation report: %w", err)
	}
	return &r, nil
}

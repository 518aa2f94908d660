package dto

import "encoding/json"

// UpdateInterviewWebhookRequest - обновление от сценария автоматизации
type UpdateInterviewWebhookRequest struct {
	CandidateID     string          `json:"candidateId"`
	InterviewLink   string          `json:"interviewLink"`
	Status          string          `json:"status"`
	InterviewReport json.RawMessage `json:"interviewReport"`
	Secret          string          `json:"secret,omitempty"`
}

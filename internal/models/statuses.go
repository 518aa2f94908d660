package models

type JobStatus string
type CandidateStatus string
type InterviewStatus string
type InterviewType string

const (
	JobStatusActive JobStatus = "active"

	CandidateStatusApplied            CandidateStatus = "Applied"
	CandidateStatusInterviewScheduled CandidateStatus = "Interview Scheduled"
	CandidateStatusInterviewCompleted CandidateStatus = "Interview Completed"
	CandidateStatusReportReady        CandidateStatus = "Report Ready"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"

	InterviewTypeAI     InterviewType = "ai"
	InterviewTypeManual InterviewType = "manual"
)

// CompletedCandidateStatuses - статусы, которые считаются в дашборде как "интервью пройдено"
var CompletedCandidateStatuses = []CandidateStatus{
	CandidateStatusInterviewCompleted,
	CandidateStatusReportReady,
}

// DefaultInterviewDuration - длительность интервью в минутах, если не передана
const DefaultInterviewDuration = 30

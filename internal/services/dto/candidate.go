package dto

// ApplyRequest - поля формы отклика (multipart)
type ApplyRequest struct {
	Name       string `form:"name" validate:"required,notblank,max=255"`
	Email      string `form:"email" validate:"required,email"`
	Phone      string `form:"phone" validate:"required,notblank,max=64"`
	Experience string `form:"experience" validate:"required,nonnegint"`
}

// UploadedFile - файл из multipart-формы, уже прочитанный в память
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

type ApplyResponse struct {
	CandidateID string `json:"candidateId"`
}

type ScheduleAIInterviewRequest struct {
	InterviewDate string `json:"interviewDate" validate:"required,notblank"`
	InterviewTime string `json:"interviewTime" validate:"required,notblank"`
}

type ScheduleManualInterviewRequest struct {
	CalendlyLink string `json:"calendlyLink" validate:"required,calendly"`
}

type TranscriptResponse struct {
	MeetingID  string `json:"meetingId"`
	Transcript string `json:"transcript"`
}

type DashboardStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	TotalCandidates     int64 `json:"totalCandidates"`
	InterviewsCompleted int64 `json:"interviewsCompleted"`
}

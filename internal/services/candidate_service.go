package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"hr_portal_backend/internal/email"
	"hr_portal_backend/internal/integrations/meeting"
	"hr_portal_backend/internal/integrations/resumetext"
	"hr_portal_backend/internal/integrations/workflow"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/internal/storage"
	"hr_portal_backend/internal/validator"
	"hr_portal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CandidateService interface {
	// ValidateResume проверяет расширение и размер до разбора остальных полей формы
	ValidateResume(filename string, size int64) error
	Apply(ctx context.Context, db *gorm.DB, jobID string, req *dto.ApplyRequest, file *dto.UploadedFile) (*models.Candidate, error)

	ListByJob(ctx context.Context, db *gorm.DB, userID, jobID string) ([]models.Candidate, error)
	GetCandidate(ctx context.Context, db *gorm.DB, userID, candidateID string) (*models.Candidate, error)
	DashboardStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error)

	ScheduleAIInterview(ctx context.Context, db *gorm.DB, userID, candidateID string, req *dto.ScheduleAIInterviewRequest) (*models.Candidate, error)
	ScheduleManualInterview(ctx context.Context, db *gorm.DB, userID, candidateID string, req *dto.ScheduleManualInterviewRequest) (*models.Candidate, error)
	// InterviewTranscript - расшифровка AI-интервью от провайдера встреч
	InterviewTranscript(ctx context.Context, db *gorm.DB, userID, candidateID string) (*dto.TranscriptResponse, error)
}

// ResumePolicy - ограничения на файл резюме
type ResumePolicy struct {
	MaxSize    int64
	Extensions []string
}

func DefaultResumePolicy() ResumePolicy {
	return ResumePolicy{
		MaxSize:    5 * 1024 * 1024,
		Extensions: []string{".pdf", ".doc", ".docx"},
	}
}

const workflowTimeout = 10 * time.Second

type candidateService struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	storage       storage.Storage
	workflow      workflow.Trigger
	extractor     resumetext.Extractor
	meetings      meeting.Creator
	invitations   email.InvitationSender
	policy        ResumePolicy
	now           func() time.Time
}

func NewCandidateService(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	storage storage.Storage,
	workflow workflow.Trigger,
	extractor resumetext.Extractor,
	meetings meeting.Creator,
	invitations email.InvitationSender,
	policy ResumePolicy,
) CandidateService {
	if policy.MaxSize <= 0 || len(policy.Extensions) == 0 {
		policy = DefaultResumePolicy()
	}
	return &candidateService{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		storage:       storage,
		workflow:      workflow,
		extractor:     extractor,
		meetings:      meetings,
		invitations:   invitations,
		policy:        policy,
		now:           time.Now,
	}
}

func (s *candidateService) ValidateResume(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(s.policy.Extensions, ext) {
		return apperrors.ErrInvalidResumeType
	}
	if size > s.policy.MaxSize {
		return apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": s.policy.MaxSize})
	}
	return nil
}

func (s *candidateService) Apply(ctx context.Context, db *gorm.DB, jobID string, req *dto.ApplyRequest, file *dto.UploadedFile) (*models.Candidate, error) {
	if file == nil {
		return nil, apperrors.ErrResumeRequired
	}
	experience, ok := validator.ParseNonNegInt(req.Experience)
	if !ok {
		return nil, apperrors.ValidationError(map[string]string{"experience": "Must be a non-negative integer"})
	}
	if err := s.ValidateResume(file.Filename, file.Size); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound.WithError(err)
		}
		return nil, apperrors.InternalError(err)
	}

	key := fmt.Sprintf("resumes/%s/%d_%s", jobID, s.now().UnixMilli(), sanitizeFilename(file.Filename))
	if err := s.storage.Save(ctx, key, bytes.NewReader(file.Content), resumeContentType(file)); err != nil {
		return nil, apperrors.UpstreamError(err, "storage", "Failed to store resume")
	}

	candidate := &models.Candidate{
		JobID:      jobID,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Experience: experience,
		ResumeURL:  s.storage.URL(key),
		ResumePath: key,
		Status:     models.CandidateStatusApplied,
	}

	if err := s.candidateRepo.Create(db, candidate); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "Failed to remove orphaned resume", delErr, "key", key)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application submitted", "candidate_id", candidate.ID, "job_id", jobID)

	s.triggerWorkflow(ctx, candidate, job, file)
	return candidate, nil
}

// triggerWorkflow - best-effort: ошибки только логируются
func (s *candidateService) triggerWorkflow(ctx context.Context, candidate *models.Candidate, job *models.Job, file *dto.UploadedFile) {
	if s.workflow == nil || !s.workflow.Enabled() {
		logger.CtxWarn(ctx, "Workflow webhook not configured, skipping trigger", "candidate_id", candidate.ID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, workflowTimeout)
	defer cancel()

	var resumeText string
	if s.extractor != nil {
		text, err := s.extractor.Extract(ctx, file.Filename, file.Content)
		if err != nil {
			logger.CtxWarn(ctx, "Resume text extraction failed", "candidate_id", candidate.ID, "error", err)
		} else {
			resumeText = text
		}
	}

	err := s.workflow.TriggerCandidateWorkflow(ctx, workflow.CandidateApplied{
		CandidateID:    candidate.ID,
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		CandidatePhone: candidate.Phone,
		JobID:          job.ID,
		JobTitle:       job.Title,
		ResumeURL:      candidate.ResumeURL,
		ResumeText:     resumeText,
	})
	if err != nil {
		logger.CtxWarn(ctx, "Workflow trigger failed, continuing", "candidate_id", candidate.ID, "error", err)
		return
	}
	logger.CtxInfo(ctx, "Workflow triggered", "candidate_id", candidate.ID)
}

func (s *candidateService) ListByJob(ctx context.Context, db *gorm.DB, userID, jobID string) ([]models.Candidate, error) {
	if _, err := ensureJobOwner(db, s.jobRepo, jobID, userID); err != nil {
		return nil, err
	}
	candidates, err := s.candidateRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return candidates, nil
}

func (s *candidateService) GetCandidate(ctx context.Context, db *gorm.DB, userID, candidateID string) (*models.Candidate, error) {
	candidate, _, err := loadOwnedCandidate(db, s.jobRepo, s.candidateRepo, candidateID, userID)
	return candidate, err
}

func (s *candidateService) DashboardStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error) {
	jobIDs, err := s.jobRepo.ListIDsByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.candidateRepo.CountByJobIDs(db, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	completed, err := s.candidateRepo.CountByJobIDs(db, jobIDs, models.CompletedCandidateStatuses...)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		TotalJobs:           int64(len(jobIDs)),
		TotalCandidates:     total,
		InterviewsCompleted: completed,
	}, nil
}

func (s *candidateService) ScheduleAIInterview(ctx context.Context, db *gorm.DB, userID, candidateID string, req *dto.ScheduleAIInterviewRequest) (*models.Candidate, error) {
	candidate, job, err := loadOwnedCandidate(db, s.jobRepo, s.candidateRepo, candidateID, userID)
	if err != nil {
		return nil, err
	}

	m, err := s.meetings.CreateMeeting(ctx, meeting.CreateRequest{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		JobTitle:       job.Title,
	})
	if err != nil {
		return nil, apperrors.UpstreamError(err, "meeting", "Failed to create interview meeting")
	}

	date := strings.TrimSpace(req.InterviewDate)
	tm := strings.TrimSpace(req.InterviewTime)
	return s.scheduleInterview(ctx, db, candidate, job, interviewSlot{
		link:      m.JoinURL,
		kind:      models.InterviewTypeAI,
		date:      &date,
		time:      &tm,
		meetingID: &m.ID,
	})
}

func (s *candidateService) ScheduleManualInterview(ctx context.Context, db *gorm.DB, userID, candidateID string, req *dto.ScheduleManualInterviewRequest) (*models.Candidate, error) {
	candidate, job, err := loadOwnedCandidate(db, s.jobRepo, s.candidateRepo, candidateID, userID)
	if err != nil {
		return nil, err
	}
	return s.scheduleInterview(ctx, db, candidate, job, interviewSlot{
		link: strings.TrimSpace(req.CalendlyLink),
		kind: models.InterviewTypeManual,
	})
}

func (s *candidateService) InterviewTranscript(ctx context.Context, db *gorm.DB, userID, candidateID string) (*dto.TranscriptResponse, error) {
	candidate, _, err := loadOwnedCandidate(db, s.jobRepo, s.candidateRepo, candidateID, userID)
	if err != nil {
		return nil, err
	}
	if candidate.MeetingID == nil || *candidate.MeetingID == "" {
		return nil, apperrors.ErrTranscriptUnavailable
	}

	text, err := s.meetings.GetTranscript(ctx, *candidate.MeetingID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "meeting", "Failed to fetch interview transcript")
	}

	return &dto.TranscriptResponse{
		MeetingID:  *candidate.MeetingID,
		Transcript: text,
	}, nil
}

// interviewSlot - что записать кандидату при назначении интервью
type interviewSlot struct {
	link      string
	kind      models.InterviewType
	date      *string
	time      *string
	meetingID *string
}

func (s *candidateService) scheduleInterview(
	ctx context.Context,
	db *gorm.DB,
	candidate *models.Candidate,
	job *models.Job,
	slot interviewSlot,
) (*models.Candidate, error) {
	link, kind, date, tm := slot.link, slot.kind, slot.date, slot.time
	updates := map[string]interface{}{
		"interview_link": link,
		"status":         models.CandidateStatusInterviewScheduled,
		"interview_type": kind,
		"interview_date": date,
		"interview_time": tm,
		"meeting_id":     slot.meetingID,
	}
	if err := s.candidateRepo.UpdateFields(db, candidate.ID, updates); err != nil {
		return nil, apperrors.InternalError(err)
	}

	err := s.invitations.SendInterviewInvitation(ctx, email.Invitation{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		JobTitle:       job.Title,
		InterviewLink:  link,
		InterviewDate:  deref(date),
		InterviewTime:  deref(tm),
		InterviewType:  string(kind),
	})
	if err != nil {
		return nil, apperrors.UpstreamError(err, "email", "Failed to send interview invitation")
	}

	logger.CtxInfo(ctx, "Interview scheduled for candidate", "candidate_id", candidate.ID, "type", kind)

	updated, err := s.candidateRepo.FindByID(db, candidate.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}

func resumeContentType(file *dto.UploadedFile) string {
	if file.ContentType != "" && file.ContentType != "application/octet-stream" {
		return file.ContentType
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

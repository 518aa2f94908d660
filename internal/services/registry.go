package services

import (
	"hr_portal_backend/internal/email"
	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/imageprocessor"
	"hr_portal_backend/internal/integrations/aitext"
	"hr_portal_backend/internal/integrations/meeting"
	"hr_portal_backend/internal/integrations/resumetext"
	"hr_portal_backend/internal/integrations/workflow"
	"hr_portal_backend/internal/repositories"
	"hr_portal_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	JobService       JobService
	CandidateService CandidateService
	InterviewService InterviewService
	UserService      UserService
	WebhookService   WebhookService
	DeletionService  DeletionService
}

// Dependencies - внешние клиенты, собранные в internal/app
type Dependencies struct {
	Storage      storage.Storage
	Accounts     identity.AccountManager
	Mailer       email.InvitationSender
	Generator    aitext.Generator
	Meetings     meeting.Creator
	Workflow     workflow.Trigger
	Extractor    resumetext.Extractor
	Images       *imageprocessor.Processor
	ResumePolicy ResumePolicy
	MaxPhotoSize int64
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	jobRepo := repositories.NewJobRepository()
	candidateRepo := repositories.NewCandidateRepository()
	interviewRepo := repositories.NewInterviewRepository()
	profileRepo := repositories.NewProfileRepository()

	images := deps.Images
	if images == nil {
		images = imageprocessor.NewProcessor(85)
	}

	return &ServiceContainer{
		JobService: NewJobService(jobRepo, deps.Generator),
		CandidateService: NewCandidateService(
			jobRepo, candidateRepo, deps.Storage, deps.Workflow,
			deps.Extractor, deps.Meetings, deps.Mailer, deps.ResumePolicy,
		),
		InterviewService: NewInterviewService(jobRepo, candidateRepo, interviewRepo),
		UserService:      NewUserService(profileRepo, deps.Accounts, deps.Storage, images, deps.MaxPhotoSize),
		WebhookService:   NewWebhookService(candidateRepo),
		DeletionService: NewDeletionService(
			profileRepo, jobRepo, candidateRepo, interviewRepo, deps.Accounts, deps.Storage,
		),
	}
}

package email

import (
	"context"
	"fmt"
	texttemplate "text/template"
	"time"
)

const TemplateInterviewInvitation = "interview_invitation"

// InvitationLinkValidity - срок действия ссылки, указываемый в письме
const InvitationLinkValidity = 7 * 24 * time.Hour

// Invitation - данные письма-приглашения на интервью
type Invitation struct {
	CandidateName  string
	CandidateEmail string
	JobTitle       string
	InterviewLink  string
	InterviewDate  string
	InterviewTime  string
	InterviewType  string // ai | manual
}

// InvitationSender отправляет приглашения на интервью
type InvitationSender interface {
	SendInterviewInvitation(ctx context.Context, inv Invitation) error
}

// Mailer собирает письма из шаблонов и отдает их провайдеру
type Mailer struct {
	provider  Provider
	templates TemplateRenderer
	text      *texttemplate.Template
}

func NewMailer(provider Provider, templates TemplateRenderer) *Mailer {
	return &Mailer{
		provider:  provider,
		templates: templates,
		text:      texttemplate.Must(texttemplate.New("invitation_text").Parse(invitationText)),
	}
}

// InvitationSubject - тема письма для вакансии
func InvitationSubject(jobTitle string) string {
	return fmt.Sprintf("Interview Invitation - %s", jobTitle)
}

func (m *Mailer) SendInterviewInvitation(ctx context.Context, inv Invitation) error {
	if inv.CandidateEmail == "" {
		return fmt.Errorf("candidate email is empty")
	}

	data := TemplateData{
		"CandidateName": inv.CandidateName,
		"JobTitle":      inv.JobTitle,
		"InterviewLink": inv.InterviewLink,
		"InterviewDate": inv.InterviewDate,
		"InterviewTime": inv.InterviewTime,
		"IsAI":          inv.InterviewType == "ai",
		"ValidDays":     int(InvitationLinkValidity.Hours() / 24),
	}

	htmlBody, err := m.templates.Render(TemplateInterviewInvitation, data)
	if err != nil {
		return err
	}
	textBody, err := renderText(m.text, data)
	if err != nil {
		return err
	}

	return m.provider.Send(ctx, &Email{
		To:       []string{inv.CandidateEmail},
		Subject:  InvitationSubject(inv.JobTitle),
		Body:     textBody,
		HTMLBody: htmlBody,
	})
}

const invitationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Interview Invitation</h2>
  <p>Dear {{.CandidateName}},</p>
  <p>Thank you for applying for the <strong>{{.JobTitle}}</strong> position. We would like to invite you to {{if .IsAI}}an AI-powered interview{{else}}an interview with our team{{end}}.</p>
  {{if .InterviewDate}}<p><strong>Date:</strong> {{.InterviewDate}}{{if .InterviewTime}} <strong>Time:</strong> {{.InterviewTime}}{{end}}</p>{{end}}
  <p><a href="{{.InterviewLink}}" style="background:#2563eb;color:#fff;padding:10px 18px;text-decoration:none;border-radius:4px;">Join Interview</a></p>
  <p>If the button does not work, copy this link into your browser:<br>{{.InterviewLink}}</p>
  <p>This link is valid for {{.ValidDays}} days.</p>
  <p>Best regards,<br>The Hiring Team</p>
</body>
</html>`

const invitationText = `Dear {{.CandidateName}},

Thank you for applying for the {{.JobTitle}} position. We would like to invite you to {{if .IsAI}}an AI-powered interview{{else}}an interview with our team{{end}}.
{{if .InterviewDate}}
Date: {{.InterviewDate}}{{if .InterviewTime}} Time: {{.InterviewTime}}{{end}}
{{end}}
Join the interview: {{.InterviewLink}}

This link is valid for {{.ValidDays}} days.

Best regards,
The Hiring Team
`

package email

import (
	"context"
	"strings"

	"hr_portal_backend/internal/logger"
)

// LogProvider не отправляет письма, а пишет их в лог. Используется в development без SMTP.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxInfo(ctx, "Email delivery skipped (log provider)",
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

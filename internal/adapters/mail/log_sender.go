package mail

import (
	"context"

	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/internal/infrastructure/observability"
)

// LogSender writes outbound mail to the log instead of delivering it.
// Real delivery is an external collaborator; this keeps the reset flow
// usable in development and tests.
type LogSender struct{}

// NewLogSender creates a new log-backed mail sender.
func NewLogSender() providers.MailSender {
	return &LogSender{}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	logger := observability.ComponentLogger("mail")
	logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("outbound mail (log sender)")
	return nil
}
